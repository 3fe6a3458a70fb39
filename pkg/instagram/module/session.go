package module

import (
	"context"
	"errors"
	"fmt"
	"log"

	"aig_go/models"
	"aig_go/pkg/instagram/api"
	"aig_go/pkg/storage"
)

// AuthenticationFailedError — обе попытки входа исчерпаны.
// Для вызвавшего действия это фатальная ошибка, повторы не выполняются.
type AuthenticationFailedError struct {
	Identity string
	Err      error
}

func (e *AuthenticationFailedError) Error() string {
	return fmt.Sprintf("авторизация %s не удалась: %v", e.Identity, e.Err)
}

func (e *AuthenticationFailedError) Unwrap() error { return e.Err }

// Modf_AccountInitialization возвращает авторизованный клиент для identity.
// Сначала пробует восстановить клиент из сохранённой сессии — в этом случае
// сетевой вход не выполняется, даже если переданные пароли отличаются от
// исходных. Если сессии нет или она повреждена, выполняется вход по основному
// паролю, затем по резервному; успешная сессия сохраняется на диск.
func Modf_AccountInitialization(ctx context.Context, sessions *storage.SessionStore, factory api.Factory, identity string, creds models.CredentialSet) (api.Client, error) {
	data, err := sessions.Load(identity)
	switch {
	case err == nil:
		client := factory()
		loadErr := client.LoadSettings(data)
		if loadErr == nil {
			return client, nil
		}
		// Файл прошёл проверку формата, но клиент его не принял —
		// считаем сессию повреждённой и авторизуемся заново
		log.Printf("[WARN] Сессия %s не принята клиентом, авторизуемся заново: %v", identity, loadErr)
	case errors.Is(err, storage.ErrSessionNotFound):
		log.Printf("[INFO] Сессии для %s нет, выполняем вход", identity)
	case errors.Is(err, storage.ErrSessionCorrupt):
		log.Printf("[WARN] Файл сессии %s повреждён, выполняем вход заново", identity)
	default:
		return nil, err
	}

	client := factory()
	client.SetDevice(api.DefaultDevice())
	client.SetUserAgent(api.DefaultUserAgent)
	client.SetCountry("IN")
	client.SetCountryCode(91)

	primaryErr := client.Login(ctx, identity, creds.PrimarySecret)
	if primaryErr == nil {
		log.Printf("[INFO] Вход %s выполнен по основному паролю", identity)
		return client, persistSession(sessions, client, identity)
	}
	log.Printf("[WARN] Основной пароль для %s отклонён: %v", identity, primaryErr)

	if creds.FallbackSecret == "" {
		return nil, &AuthenticationFailedError{Identity: identity, Err: primaryErr}
	}

	if fallbackErr := client.Login(ctx, identity, creds.FallbackSecret); fallbackErr != nil {
		return nil, &AuthenticationFailedError{Identity: identity, Err: fallbackErr}
	}
	// Отдельная запись в логе: аккаунты на резервном пароле нужно перевыпустить
	log.Printf("[WARN] Вход %s выполнен по РЕЗЕРВНОМУ паролю, аккаунт требует перепрошивки пароля", identity)
	return client, persistSession(sessions, client, identity)
}

// persistSession сохраняет состояние клиента как файл сессии identity.
func persistSession(sessions *storage.SessionStore, client api.Client, identity string) error {
	data, err := client.DumpSettings()
	if err != nil {
		return err
	}
	return sessions.Save(identity, data)
}
