package accounts

import (
	"log"

	"aig_go/internal/config"
	"aig_go/pkg/instagram"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, manager *instagram.Manager, cfg config.Config) {
	handler := NewHandler(manager, cfg)
	r.GET("", handler.List)
	r.POST("/refresh", handler.Refresh)
	r.DELETE("/:username", handler.Delete)
	r.POST("/followers", handler.Followers)
	r.POST("/following", handler.Following)
	r.POST("/posts", handler.Posts)
	log.Printf("[ROUTER] Accounts routes registered")
}
