package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// Ошибки загрузки сессии. Обе обрабатываются на месте повторной
// авторизацией и не должны доходить до внешнего вызывающего.
var (
	// ErrSessionNotFound — файла сессии для identity нет.
	ErrSessionNotFound = errors.New("сессия не найдена")
	// ErrSessionCorrupt — файл есть, но его содержимое не разбирается.
	ErrSessionCorrupt = errors.New("файл сессии повреждён")
)

// SessionStore хранит сериализованные сессии по одному файлу на identity.
// Содержимое файла для хранилища непрозрачно: проверяется только то,
// что это корректный JSON, интерпретация остаётся за клиентским слоем.
type SessionStore struct {
	Dir string
}

// NewSessionStore создаёт каталог сессий, если его ещё нет.
func NewSessionStore(dir string) (*SessionStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("не удалось создать каталог сессий: %w", err)
	}
	return &SessionStore{Dir: dir}, nil
}

// Path возвращает путь файла сессии для identity.
func (s *SessionStore) Path(identity string) string {
	return filepath.Join(s.Dir, identity+".json")
}

// Load читает сессию identity. Возвращает ErrSessionNotFound при отсутствии
// файла и ErrSessionCorrupt, если содержимое не является корректным JSON.
func (s *SessionStore) Load(identity string) ([]byte, error) {
	data, err := os.ReadFile(s.Path(identity))
	if os.IsNotExist(err) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		log.Printf("[SESSION STORE] ошибка чтения сессии %s: %v", identity, err)
		return nil, err
	}
	if !json.Valid(data) {
		return nil, ErrSessionCorrupt
	}
	return data, nil
}

// Save сохраняет сессию identity, затирая прежнее содержимое.
// Запись атомарная: усечённый файл не может быть принят за сессию.
func (s *SessionStore) Save(identity string, data []byte) error {
	if err := writeFileAtomic(s.Path(identity), data); err != nil {
		log.Printf("[SESSION STORE] ошибка сохранения сессии %s: %v", identity, err)
		return err
	}
	return nil
}

// Rename переносит файл сессии на новое имя аккаунта после смены username.
func (s *SessionStore) Rename(oldIdentity, newIdentity string) error {
	err := os.Rename(s.Path(oldIdentity), s.Path(newIdentity))
	if os.IsNotExist(err) {
		return ErrSessionNotFound
	}
	if err != nil {
		return fmt.Errorf("не удалось переименовать сессию %s -> %s: %w", oldIdentity, newIdentity, err)
	}
	return nil
}

// Delete удаляет файл сессии. Отсутствие файла ошибкой не считается.
func (s *SessionStore) Delete(identity string) error {
	err := os.Remove(s.Path(identity))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("не удалось удалить сессию %s: %w", identity, err)
	}
	return nil
}
