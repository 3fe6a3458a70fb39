package runner

import (
	"log"

	"aig_go/internal/config"
	"aig_go/pkg/instagram"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, manager *instagram.Manager, cfg config.Config) {
	handler := NewHandler(manager, cfg)
	r.POST("/start", handler.Start)
	r.POST("/cancel", handler.CancelAll)
	log.Printf("[ROUTER] Runner routes registered")
}
