package message

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

// Send отправляет личное сообщение от имени аккаунта.
func (h *Handler) Send(c *gin.Context) {
	var req struct {
		Username         string `json:"username" binding:"required"`
		Password         string `json:"password"`
		FallbackPassword string `json:"fallback_password"`
		Receiver         string `json:"receiver" binding:"required"`
		Text             string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	creds := common.Credentials(req.Username, req.Password, req.FallbackPassword,
		h.Cfg.CommonPassword, h.Cfg.SecondaryPassword)
	if err := h.Manager.SendDM(c.Request.Context(), req.Username, creds, req.Receiver, req.Text); err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK("Message sent to "+req.Receiver))
}
