package instagram

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"aig_go/models"
	"aig_go/pkg/instagram/api"
	"aig_go/pkg/instagram/module"
	"aig_go/pkg/storage"
)

// Manager — диспетчер действий над аккаунтами. Каждое действие проходит
// один и тот же конвейер: инициализация клиента по сессии, вызов
// платформы, при изменении профиля — запись в хранилище метаданных.
// Состояние между вызовами не разделяется: клиент живёт в рамках
// одного действия.
type Manager struct {
	Sessions *storage.SessionStore
	Accounts *storage.AccountStore
	Factory  api.Factory

	ProfilesDir string
	MediaDir    string
}

// NewManager создаёт каталоги под скачанные файлы и собирает диспетчер.
func NewManager(sessions *storage.SessionStore, accounts *storage.AccountStore, factory api.Factory, profilesDir, mediaDir string) (*Manager, error) {
	for _, dir := range []string{profilesDir, mediaDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("не удалось создать каталог %s: %w", dir, err)
		}
	}
	return &Manager{
		Sessions:    sessions,
		Accounts:    accounts,
		Factory:     factory,
		ProfilesDir: profilesDir,
		MediaDir:    mediaDir,
	}, nil
}

// client возвращает авторизованный клиент для identity.
func (m *Manager) client(ctx context.Context, identity string, creds models.CredentialSet) (api.Client, error) {
	return module.Modf_AccountInitialization(ctx, m.Sessions, m.Factory, identity, creds)
}

// resolveUser приводит цель к числовому идентификатору: числовая строка
// используется как есть, хэндл разрешается через платформу.
func (m *Manager) resolveUser(ctx context.Context, client api.Client, target string) (int64, error) {
	if id, err := strconv.ParseInt(target, 10, 64); err == nil {
		return id, nil
	}
	id, err := client.UserIDFromUsername(ctx, target)
	if err != nil {
		return 0, &TargetResolutionError{Target: target, Err: err}
	}
	return id, nil
}
