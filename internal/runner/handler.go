package runner

import (
	"context"
	"log"
	"net/http"
	"sync"

	"aig_go/internal/common"
	"aig_go/internal/config"
	"aig_go/internal/httputil"
	"aig_go/pkg/instagram"

	"github.com/gin-gonic/gin"
)

// Handler запускает пакетные проходы по всем известным аккаунтам.
// Задачи живут в отдельных горутинах и снимаются по запросу отмены.
type Handler struct {
	Manager *instagram.Manager
	Cfg     config.Config

	mu    sync.Mutex
	tasks map[int]context.CancelFunc
	next  int
}

func NewHandler(manager *instagram.Manager, cfg config.Config) *Handler {
	return &Handler{
		Manager: manager,
		Cfg:     cfg,
		tasks:   map[int]context.CancelFunc{},
	}
}

// Start запускает проход: каждый аккаунт подписывается на цель и
// обновляет свои метаданные. Ошибки по отдельным аккаунтам логируются
// и не останавливают проход.
func (h *Handler) Start(c *gin.Context) {
	var req struct {
		Target           string `json:"target" binding:"required"`
		Password         string `json:"password"`
		FallbackPassword string `json:"fallback_password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	// Запускаем задачу в отдельной горутине с возможностью отмены.
	ctx, cancel := context.WithCancel(context.Background())

	h.mu.Lock()
	id := h.next
	h.next++
	h.tasks[id] = cancel
	h.mu.Unlock()

	go func(taskID int) {
		defer func() {
			h.mu.Lock()
			delete(h.tasks, taskID)
			h.mu.Unlock()
		}()
		h.run(ctx, req.Target, req.Password, req.FallbackPassword)
	}(id)

	c.JSON(http.StatusOK, gin.H{"status": "запущено", "task_id": id})
}

// CancelAll отменяет все активные проходы.
func (h *Handler) CancelAll(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for id, cancel := range h.tasks {
		cancel()
		delete(h.tasks, id)
	}

	c.JSON(http.StatusOK, gin.H{"status": "все задачи остановлены"})
}

// run обходит все записи документа аккаунтов последовательно,
// выдерживая паузу между аккаунтами.
func (h *Handler) run(ctx context.Context, target, password, fallbackPassword string) {
	records, err := h.Manager.Accounts.All()
	if err != nil {
		log.Printf("[ERROR] Проход не запущен, документ аккаунтов не прочитан: %v", err)
		return
	}
	log.Printf("[INFO] Проход начат: %d аккаунтов, цель %s", len(records), target)

	var processed int
	for i, record := range records {
		if i > 0 {
			if err := common.WaitWithCancellation(ctx, h.Cfg.DelayMinSeconds, h.Cfg.DelayMaxSeconds); err != nil {
				log.Printf("[INFO] Проход остановлен: %v", err)
				return
			}
		}

		identity := record.Identity
		creds := common.Credentials(identity, password, fallbackPassword,
			h.Cfg.CommonPassword, h.Cfg.SecondaryPassword)

		if err := h.Manager.FollowUser(ctx, identity, creds, target); err != nil {
			log.Printf("[ERROR] Ошибка обработки %s: %v", identity, err)
			continue
		}
		if _, err := h.Manager.GetAccountInfo(ctx, identity, creds); err != nil {
			log.Printf("[WARN] Не удалось обновить метаданные %s: %v", identity, err)
		}
		processed++
	}

	log.Printf("[INFO] Проход завершён: обработано %d из %d аккаунтов", processed, len(records))
}
