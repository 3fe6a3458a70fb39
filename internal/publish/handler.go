package publish

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

type publishRequest struct {
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password"`
	FallbackPassword string `json:"fallback_password"`
	ImagePath        string `json:"image_path" binding:"required"`
	Caption          string `json:"caption"`
}

func (h *Handler) credentials(req publishRequest) models.CredentialSet {
	return common.Credentials(req.Username, req.Password, req.FallbackPassword,
		h.Cfg.CommonPassword, h.Cfg.SecondaryPassword)
}

// Photo публикует фото в ленту аккаунта.
func (h *Handler) Photo(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	media, err := h.Manager.PostPhoto(c.Request.Context(), req.Username, h.credentials(req), req.ImagePath, req.Caption)
	if err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "media_pk": media.PK})
}

// Story публикует фото в историю аккаунта.
func (h *Handler) Story(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	story, err := h.Manager.PostStory(c.Request.Context(), req.Username, h.credentials(req), req.ImagePath)
	if err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "media_pk": story.PK})
}
