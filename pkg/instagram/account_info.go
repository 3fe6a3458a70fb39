package instagram

import (
	"context"
	"errors"
	"log"
	"time"

	"aig_go/models"
)

// GetAccountInfo запрашивает свежий профиль аккаунта и целиком
// обновляет его запись в хранилище метаданных.
func (m *Manager) GetAccountInfo(ctx context.Context, identity string, creds models.CredentialSet) (*models.AccountRecord, error) {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return nil, err
	}

	info, err := client.AccountInfo(ctx)
	if err != nil {
		return nil, rejected("account_info", err)
	}

	record := models.AccountRecord{
		Identity:       info.Username,
		DisplayName:    info.FullName,
		Bio:            info.Biography,
		FollowerCount:  info.FollowerCount,
		FollowingCount: info.FollowingCount,
		PostCount:      info.MediaCount,
		IsPrivate:      info.IsPrivate,
		LastUpdated:    time.Now(),
	}
	if err := m.Accounts.Upsert(record); err != nil {
		return nil, err
	}

	log.Printf("[INFO] Метаданные %s обновлены: %d подписчиков, %d подписок, %d постов",
		record.Identity, record.FollowerCount, record.FollowingCount, record.PostCount)
	return &record, nil
}

// LoginAccount — вызов для внешней поверхности запуска: создаёт или
// переиспользует сессию identity и обновляет метаданные. Всегда
// возвращает результат в формате {success, message}.
func (m *Manager) LoginAccount(ctx context.Context, identity string, creds models.CredentialSet) models.ActionResult {
	_, loadErr := m.Sessions.Load(identity)
	reused := loadErr == nil

	if _, err := m.client(ctx, identity, creds); err != nil {
		log.Printf("[ERROR] Вход %s не выполнен: %v", identity, err)
		var authErr *AuthenticationFailedError
		if errors.As(err, &authErr) {
			return models.Fail("Login failed: " + authErr.Err.Error())
		}
		return models.Fail("Unexpected error: " + err.Error())
	}

	// Метаданные обновляем по возможности: готовая сессия важнее
	if _, err := m.GetAccountInfo(ctx, identity, creds); err != nil {
		log.Printf("[WARN] Не удалось обновить метаданные %s после входа: %v", identity, err)
	}

	if reused {
		return models.OK("Session already exists")
	}
	return models.OK("Login successful")
}

// HasSession сообщает, есть ли на диске пригодная сессия identity.
func (m *Manager) HasSession(identity string) bool {
	_, err := m.Sessions.Load(identity)
	return err == nil
}
