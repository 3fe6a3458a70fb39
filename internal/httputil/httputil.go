package httputil

import (
	"errors"
	"net/http"

	"aig_go/models"
	"aig_go/pkg/instagram"

	"github.com/gin-gonic/gin"
)

// RespondError отправляет сообщение об ошибке в едином формате и прекращает обработку запроса.
// Используем AbortWithStatusJSON, чтобы последующие обработчики не выполнялись, даже если забыли вернуть управление.
func RespondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, models.Fail(msg))
}

// RespondActionError подбирает HTTP-статус по типу ошибки действия
// и отвечает единым форматом {success, message}.
func RespondActionError(c *gin.Context, err error) {
	RespondError(c, statusForError(err), err.Error())
}

func statusForError(err error) int {
	var (
		authErr        *instagram.AuthenticationFailedError
		targetErr      *instagram.TargetResolutionError
		rejectedErr    *instagram.ActionRejectedError
		mediaErr       *instagram.MediaInvalidError
		unsupportedErr *instagram.MediaTypeUnsupportedError
	)
	switch {
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.As(err, &targetErr):
		return http.StatusNotFound
	case errors.As(err, &rejectedErr):
		return http.StatusForbidden
	case errors.As(err, &mediaErr), errors.As(err, &unsupportedErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
