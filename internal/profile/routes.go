package profile

import (
	"log"

	"aig_go/internal/config"
	"aig_go/pkg/instagram"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.RouterGroup, manager *instagram.Manager, cfg config.Config) {
	handler := NewHandler(manager, cfg)
	r.POST("/username", handler.ChangeUsername)
	r.POST("/name", handler.ChangeName)
	r.POST("/bio", handler.ChangeBio)
	r.POST("/picture", handler.ChangePicture)
	r.POST("/picture/download", handler.DownloadPicture)
	log.Printf("[ROUTER] Profile routes registered")
}
