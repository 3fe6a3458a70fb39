package media

import (
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

type downloadRequest struct {
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password"`
	FallbackPassword string `json:"fallback_password"`
	PostURL          string `json:"post_url" binding:"required"`
}

func (h *Handler) credentials(req downloadRequest) models.CredentialSet {
	return common.Credentials(req.Username, req.Password, req.FallbackPassword,
		h.Cfg.CommonPassword, h.Cfg.SecondaryPassword)
}

// Download скачивает медиа публикации на диск и возвращает путь файла.
func (h *Handler) Download(c *gin.Context) {
	var req downloadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	path, err := h.Manager.DownloadPost(c.Request.Context(), req.Username, h.credentials(req), req.PostURL)
	if err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "path": path})
}
