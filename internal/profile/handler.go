package profile

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

type editRequest struct {
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password"`
	FallbackPassword string `json:"fallback_password"`
	NewValue         string `json:"new_value"`
	ImagePath        string `json:"image_path"`
}

func (h *Handler) credentials(req editRequest) models.CredentialSet {
	return common.Credentials(req.Username, req.Password, req.FallbackPassword,
		h.Cfg.CommonPassword, h.Cfg.SecondaryPassword)
}

// bindEdit разбирает запрос правки; при ошибке отвечает сам и возвращает false.
func bindEdit(c *gin.Context, req *editRequest) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return false
	}
	return true
}

func (h *Handler) ChangeUsername(c *gin.Context) {
	var req editRequest
	if !bindEdit(c, &req) {
		return
	}
	if err := h.Manager.ChangeUsername(c.Request.Context(), req.Username, h.credentials(req), req.NewValue); err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK("Username updated"))
}

func (h *Handler) ChangeName(c *gin.Context) {
	var req editRequest
	if !bindEdit(c, &req) {
		return
	}
	if err := h.Manager.ChangeName(c.Request.Context(), req.Username, h.credentials(req), req.NewValue); err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK("Name updated"))
}

func (h *Handler) ChangeBio(c *gin.Context) {
	var req editRequest
	if !bindEdit(c, &req) {
		return
	}
	if err := h.Manager.ChangeBio(c.Request.Context(), req.Username, h.credentials(req), req.NewValue); err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK("Bio updated"))
}

func (h *Handler) ChangePicture(c *gin.Context) {
	var req editRequest
	if !bindEdit(c, &req) {
		return
	}
	if req.ImagePath == "" {
		httputil.RespondError(c, http.StatusBadRequest, "image_path is required")
		return
	}
	if err := h.Manager.ChangeProfilePicture(c.Request.Context(), req.Username, h.credentials(req), req.ImagePath); err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK("Profile picture updated"))
}

// DownloadPicture скачивает текущий аватар аккаунта на диск.
func (h *Handler) DownloadPicture(c *gin.Context) {
	var req editRequest
	if !bindEdit(c, &req) {
		return
	}
	path, err := h.Manager.DownloadProfilePicture(c.Request.Context(), req.Username, h.credentials(req))
	if err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "path": path})
}
