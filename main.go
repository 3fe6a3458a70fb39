package main

import (
	"log"
	"os"

	"aig_go/internal/accounts"
	"aig_go/internal/auth"
	"aig_go/internal/config"
	"aig_go/internal/interaction"
	"aig_go/internal/media"
	"aig_go/internal/message"
	"aig_go/internal/middleware"
	"aig_go/internal/profile"
	"aig_go/internal/publish"
	"aig_go/internal/runner"
	"aig_go/pkg/instagram"
	"aig_go/pkg/instagram/api"
	"aig_go/pkg/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.Load(configPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация хранилищ
	sessions, err := storage.NewSessionStore(cfg.SessionDir)
	if err != nil {
		log.Fatalf("Failed to init session store: %v", err)
	}
	accountStore := storage.NewAccountStore(cfg.AccountsFile)

	// Фабрика клиентов платформы
	factory := api.Factory(func() api.Client {
		return api.NewHTTPClient(cfg.BaseURL)
	})

	manager, err := instagram.NewManager(sessions, accountStore, factory, cfg.ProfilesDir, cfg.MediaDir)
	if err != nil {
		log.Fatalf("Failed to init manager: %v", err)
	}

	// Настройка роутера
	r := setupRouter(manager, cfg)

	// Запуск сервера
	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// Функция получения пути конфигурации из переменных окружения
func configPath() string {
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		return path
	}
	return "config.toml"
}

// Настройка маршрутов
func setupRouter(manager *instagram.Manager, cfg config.Config) *gin.Engine {
	r := gin.Default()

	protected := r.Group("/", middleware.AuthRequired(cfg.BearerToken))

	auth.SetupRoutes(protected.Group("/auth"), manager, cfg)
	accounts.SetupRoutes(protected.Group("/accounts"), manager, cfg)
	profile.SetupRoutes(protected.Group("/profile"), manager, cfg)
	interaction.SetupRoutes(protected.Group("/interaction"), manager, cfg)
	publish.SetupRoutes(protected.Group("/publish"), manager, cfg)
	message.SetupRoutes(protected.Group("/message"), manager, cfg)
	media.SetupRoutes(protected.Group("/media"), manager, cfg)
	runner.SetupRoutes(protected.Group("/runner"), manager, cfg)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
