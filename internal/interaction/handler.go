package interaction

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

type actionRequest struct {
	Username         string `json:"username" binding:"required"`
	Password         string `json:"password"`
	FallbackPassword string `json:"fallback_password"`
	Target           string `json:"target"`
	PostURL          string `json:"post_url"`
	Text             string `json:"text"`
}

func (h *Handler) credentials(req actionRequest) models.CredentialSet {
	return common.Credentials(req.Username, req.Password, req.FallbackPassword,
		h.Cfg.CommonPassword, h.Cfg.SecondaryPassword)
}

func (h *Handler) Follow(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Target == "" {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.Manager.FollowUser(c.Request.Context(), req.Username, h.credentials(req), req.Target); err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK("Followed "+req.Target))
}

func (h *Handler) Unfollow(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Target == "" {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.Manager.UnfollowUser(c.Request.Context(), req.Username, h.credentials(req), req.Target); err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK("Unfollowed "+req.Target))
}

func (h *Handler) Like(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PostURL == "" {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.Manager.LikePost(c.Request.Context(), req.Username, h.credentials(req), req.PostURL); err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK("Post liked"))
}

func (h *Handler) Comment(c *gin.Context) {
	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.PostURL == "" || req.Text == "" {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if err := h.Manager.CommentPost(c.Request.Context(), req.Username, h.credentials(req), req.PostURL, req.Text); err != nil {
		httputil.RespondActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.OK("Comment sent"))
}
