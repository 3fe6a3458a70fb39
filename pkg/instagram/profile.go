package instagram

import (
	"context"
	"log"
	"os"

	"aig_go/models"
	"aig_go/pkg/instagram/api"
)

// Суффикс, которым помечаются отображаемые имена аккаунтов сети.
const displayNameSuffix = " ♠️"

// ChangeUsername меняет username аккаунта. Вместе с профилем
// переименовывается файл сессии и ключ записи в метаданных, иначе
// следующая инициализация не найдёт сессию.
func (m *Manager) ChangeUsername(ctx context.Context, identity string, creds models.CredentialSet, newUsername string) error {
	if newUsername == "" || newUsername == identity {
		log.Printf("[INFO] Смена username для %s пропущена: значение пустое или не изменилось", identity)
		return nil
	}

	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return err
	}
	if err := client.AccountEdit(ctx, api.AccountEdit{Username: &newUsername}); err != nil {
		return &EditError{Field: "username", Err: err}
	}

	if err := m.Sessions.Rename(identity, newUsername); err != nil {
		// Профиль уже переименован: не откатываем, сессия пересоздастся
		log.Printf("[WARN] Не удалось переименовать сессию %s -> %s: %v", identity, newUsername, err)
	}
	if err := m.Accounts.Patch(identity, "username", newUsername); err != nil {
		return err
	}

	log.Printf("[INFO] Username изменён: %s -> %s", identity, newUsername)
	return nil
}

// ChangeName меняет отображаемое имя, добавляя фирменный суффикс.
func (m *Manager) ChangeName(ctx context.Context, identity string, creds models.CredentialSet, newName string) error {
	if newName == "" || newName == identity {
		log.Printf("[INFO] Смена имени для %s пропущена: значение пустое или совпадает с username", identity)
		return nil
	}

	formatted := newName + displayNameSuffix
	if current, err := m.Accounts.Get(identity); err == nil && current != nil && current.DisplayName == formatted {
		log.Printf("[INFO] Смена имени для %s пропущена: имя уже установлено", identity)
		return nil
	}

	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return err
	}
	if err := client.AccountEdit(ctx, api.AccountEdit{FullName: &formatted}); err != nil {
		return &EditError{Field: "full_name", Err: err}
	}
	if err := m.Accounts.Patch(identity, "full_name", formatted); err != nil {
		return err
	}

	log.Printf("[INFO] Имя %s обновлено: %s", identity, formatted)
	return nil
}

// ChangeBio меняет описание профиля. Пустое или не изменившееся
// значение — no-op: фиксируется в логе, ошибкой не считается и
// хранилище метаданных не трогает.
func (m *Manager) ChangeBio(ctx context.Context, identity string, creds models.CredentialSet, newBio string) error {
	if newBio == "" {
		log.Printf("[INFO] Смена bio для %s пропущена: значение пустое", identity)
		return nil
	}
	if current, err := m.Accounts.Get(identity); err == nil && current != nil && current.Bio == newBio {
		log.Printf("[INFO] Смена bio для %s пропущена: значение не изменилось", identity)
		return nil
	}

	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return err
	}
	if err := client.AccountEdit(ctx, api.AccountEdit{Biography: &newBio}); err != nil {
		return &EditError{Field: "bio", Err: err}
	}
	if err := m.Accounts.Patch(identity, "bio", newBio); err != nil {
		return err
	}

	log.Printf("[INFO] Bio %s обновлено", identity)
	return nil
}

// ChangeProfilePicture загружает новый аватар из локального файла.
func (m *Manager) ChangeProfilePicture(ctx context.Context, identity string, creds models.CredentialSet, imagePath string) error {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return &MediaInvalidError{Path: imagePath, Reason: "файл не читается"}
	}
	jpegData, err := NormalizeJPEG(data)
	if err != nil {
		return &MediaInvalidError{Path: imagePath, Reason: err.Error()}
	}

	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return err
	}
	if err := client.AccountChangePicture(ctx, jpegData); err != nil {
		return &EditError{Field: "profile_pic", Err: err}
	}

	log.Printf("[INFO] Аватар %s обновлён", identity)
	return nil
}
