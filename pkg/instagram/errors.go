package instagram

import (
	"errors"
	"fmt"

	"aig_go/pkg/instagram/api"
	"aig_go/pkg/instagram/module"
)

// AuthenticationFailedError переиспользуется из подпакета module.
type AuthenticationFailedError = module.AuthenticationFailedError

// TargetResolutionError — цель действия не удалось привести к
// идентификатору платформы (пользователь или публикация).
type TargetResolutionError struct {
	Target string
	Err    error
}

func (e *TargetResolutionError) Error() string {
	return fmt.Sprintf("не удалось определить цель %q: %v", e.Target, e.Err)
}

func (e *TargetResolutionError) Unwrap() error { return e.Err }

// ActionRejectedError — платформа отказала в действии: политика,
// ограничение частоты или блокировка.
type ActionRejectedError struct {
	Action string
	Err    error
}

func (e *ActionRejectedError) Error() string {
	return fmt.Sprintf("платформа отклонила действие %s: %v", e.Action, e.Err)
}

func (e *ActionRejectedError) Unwrap() error { return e.Err }

// EditError — правка профиля не прошла на стороне платформы.
type EditError struct {
	Field string
	Err   error
}

func (e *EditError) Error() string {
	return fmt.Sprintf("не удалось изменить поле %s: %v", e.Field, e.Err)
}

func (e *EditError) Unwrap() error { return e.Err }

// UploadError — сбой сети или платформы при загрузке медиа.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("не удалось загрузить медиа: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// DownloadError — сбой при скачивании медиа по ссылке.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("не удалось скачать %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }

// MediaInvalidError — локальный файл не прошёл проверку до каких-либо
// сетевых вызовов.
type MediaInvalidError struct {
	Path   string
	Reason string
}

func (e *MediaInvalidError) Error() string {
	return fmt.Sprintf("медиафайл %s непригоден: %s", e.Path, e.Reason)
}

// MediaTypeUnsupportedError — у публикации тип, который мы не умеем скачивать.
type MediaTypeUnsupportedError struct {
	MediaType int
}

func (e *MediaTypeUnsupportedError) Error() string {
	return fmt.Sprintf("тип медиа %d не поддерживается", e.MediaType)
}

// rejected оборачивает отказ платформы в ActionRejectedError,
// остальные ошибки пропускает без изменений.
func rejected(action string, err error) error {
	var remoteErr *api.RemoteError
	if errors.As(err, &remoteErr) {
		return &ActionRejectedError{Action: action, Err: err}
	}
	return err
}
