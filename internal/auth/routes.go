package auth

import (
	"log"

	"aig_go/internal/config"
	"aig_go/pkg/instagram"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, manager *instagram.Manager, cfg config.Config) {
	handler := NewHandler(manager, cfg)
	r.POST("/login", handler.Login)
	log.Printf("[ROUTER] Auth routes registered")
}
