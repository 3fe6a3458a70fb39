package interaction

import (
	"log"

	"aig_go/internal/config"
	"aig_go/pkg/instagram"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, manager *instagram.Manager, cfg config.Config) {
	handler := NewHandler(manager, cfg)
	r.POST("/follow", handler.Follow)
	r.POST("/unfollow", handler.Unfollow)
	r.POST("/like", handler.Like)
	r.POST("/comment", handler.Comment)
	log.Printf("[ROUTER] Interaction routes registered")
}
