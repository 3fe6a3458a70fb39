package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthRequired проверяет наличие корректного статичного Bearer-токена.
// Пустой токен в конфигурации отключает проверку — удобно для локальной отладки.
func AuthRequired(token string) gin.HandlerFunc {
	expected := "Bearer " + token
	return func(c *gin.Context) {
		if token != "" && c.GetHeader("Authorization") != expected {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Next()
	}
}
