package accounts

import (
	"log"
	"net/http"

	"aig_go/internal/common"
	"aig_go/internal/config"
	"aig_go/internal/httputil"
	"aig_go/models"
	"aig_go/pkg/instagram"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Manager *instagram.Manager
	Cfg     config.Config
}

func NewHandler(manager *instagram.Manager, cfg config.Config) *Handler {
	return &Handler{Manager: manager, Cfg: cfg}
}

// identityRequest — общие поля запросов по одному аккаунту.
type identityRequest struct {
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password"`
	FallbackPassword string `json:"fallback_password"`
	Limit            int    `json:"limit"`
}

func (h *Handler) credentials(req identityRequest) (string, models.CredentialSet) {
	return req.Username, common.Credentials(req.Username, req.Password, req.FallbackPassword,
		h.Cfg.CommonPassword, h.Cfg.SecondaryPassword)
}

// List возвращает все записи метаданных в порядке их добавления.
func (h *Handler) List(c *gin.Context) {
	records, err := h.Manager.Accounts.All()
	if err != nil {
		log.Printf("[ERROR] Не удалось прочитать документ аккаунтов: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to load accounts")
		return
	}
	c.JSON(http.StatusOK, gin.H{"accounts": records})
}

// Refresh запрашивает свежий профиль и целиком обновляет запись аккаунта.
func (h *Handler) Refresh(c *gin.Context) {
	var req identityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	identity, creds := h.credentials(req)
	record, err := h.Manager.GetAccountInfo(c.Request.Context(), identity, creds)
	if err != nil {
		log.Printf("[ERROR] Не удалось обновить метаданные %s: %v", identity, err)
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "account": record})
}

// Delete убирает запись аккаунта из документа. Повторный вызов безвреден.
func (h *Handler) Delete(c *gin.Context) {
	identity := c.Param("username")
	if err := h.Manager.Accounts.Remove(identity); err != nil {
		log.Printf("[ERROR] Не удалось удалить запись %s: %v", identity, err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to remove account")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Account removed"})
}

// Followers возвращает подписчиков аккаунта.
func (h *Handler) Followers(c *gin.Context) {
	var req identityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	identity, creds := h.credentials(req)
	users, err := h.Manager.GetFollowers(c.Request.Context(), identity, creds, limitOrDefault(req.Limit, 100))
	if err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// Following возвращает подписки аккаунта.
func (h *Handler) Following(c *gin.Context) {
	var req identityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	identity, creds := h.credentials(req)
	users, err := h.Manager.GetFollowing(c.Request.Context(), identity, creds, limitOrDefault(req.Limit, 100))
	if err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// Posts возвращает последние публикации аккаунта.
func (h *Handler) Posts(c *gin.Context) {
	var req identityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	identity, creds := h.credentials(req)
	posts, err := h.Manager.GetUserPosts(c.Request.Context(), identity, creds, limitOrDefault(req.Limit, 12))
	if err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "posts": posts})
}

func limitOrDefault(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}
