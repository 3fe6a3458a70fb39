package auth

import (
	"net/http"

	"aig_go/internal/common"
	"aig_go/internal/config"
	"aig_go/internal/httputil"
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

// Login создаёт или переиспользует сессию аккаунта и обновляет его
// метаданные. Ответ всегда в формате {success, message}, статус 200:
// исход описывает тело, как и ожидает внешняя поверхность запуска.
func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username         string `json:"username" binding:"required"`
		Password         string `json:"password"`
		FallbackPassword string `json:"fallback_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "No username selected")
		return
	}

	creds := common.Credentials(req.Username, req.Password, req.FallbackPassword,
		h.Cfg.CommonPassword, h.Cfg.SecondaryPassword)
	result := h.Manager.LoginAccount(c.Request.Context(), req.Username, creds)
	c.JSON(http.StatusOK, result)
}
