package models

// ActionResult — единый формат ответа для всех действий.
// Его же отдаёт HTTP-слой внешнему потребителю.
type ActionResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// OK собирает успешный результат с человекочитаемым сообщением.
func OK(message string) ActionResult {
	return ActionResult{Success: true, Message: message}
}

// Fail собирает неуспешный результат. Причина всегда попадает в сообщение.
func Fail(message string) ActionResult {
	return ActionResult{Success: false, Message: message}
}
