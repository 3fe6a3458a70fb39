package message

import (
	"log"

	"aig_go/internal/config"
	"aig_go/pkg/instagram"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, manager *instagram.Manager, cfg config.Config) {
	handler := NewHandler(manager, cfg)
	r.POST("/send", handler.Send)
	log.Printf("[ROUTER] Message routes registered")
}
