package api

import (
	"errors"
	"fmt"
)

// ErrBadPassword возвращается при отказе платформы принять пароль.
// Слой инициализации по этой ошибке переходит к резервному паролю.
var ErrBadPassword = errors.New("платформа отклонила пароль")

// RemoteError — отказ платформы, не связанный с паролем: ограничение
// частоты, блокировка действия, недоступность объекта.
type RemoteError struct {
	Status  int    // HTTP-статус ответа
	Kind    string // error_type из тела ответа, если есть
	Message string
}

func (e *RemoteError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("платформа вернула отказ %s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("платформа вернула статус %d: %s", e.Status, e.Message)
}
