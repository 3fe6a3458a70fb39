package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"aig_go/models"
)

// AccountStore владеет общим документом accounts.json с метаданными
// аккаунтов. Все операции проходят полный цикл «прочитать — изменить —
// записать» под мьютексом, чтобы параллельные изменения по разным
// аккаунтам не теряли записи друг друга. Порядок записей в документе —
// порядок первого добавления, повторные upsert его не меняют.
type AccountStore struct {
	Path string

	mu sync.Mutex
}

func NewAccountStore(path string) *AccountStore {
	return &AccountStore{Path: path}
}

// load читает документ целиком. Отсутствующий файл равнозначен пустому
// документу — так ведёт себя и первый запуск.
func (s *AccountStore) load() ([]models.AccountRecord, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать %s: %w", s.Path, err)
	}

	var records []models.AccountRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("не удалось разобрать %s: %w", s.Path, err)
	}
	return records, nil
}

// save записывает документ целиком атомарной заменой файла.
func (s *AccountStore) save(records []models.AccountRecord) error {
	// Пустой документ сериализуем как пустой массив, а не null
	if records == nil {
		records = []models.AccountRecord{}
	}
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("не удалось сериализовать документ аккаунтов: %w", err)
	}
	return writeFileAtomic(s.Path, data)
}

// Upsert вставляет запись или заменяет существующую с тем же identity.
// Замена происходит на месте: позиция записи в документе сохраняется.
func (s *AccountStore) Upsert(record models.AccountRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	record.LastUpdated = time.Now()

	replaced := false
	for i := range records {
		if records[i].Identity == record.Identity {
			records[i] = record
			replaced = true
			break
		}
	}
	if !replaced {
		records = append(records, record)
	}

	if err := s.save(records); err != nil {
		return err
	}
	log.Printf("[ACCOUNTS] Запись для %s сохранена (replace=%v)", record.Identity, replaced)
	return nil
}

// Patch изменяет одно поле записи identity. Если записи нет, операция —
// тихий no-op: документ не меняется и новая запись не создаётся.
func (s *AccountStore) Patch(identity, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	found := false
	for i := range records {
		if records[i].Identity != identity {
			continue
		}
		switch field {
		case "username":
			records[i].Identity = value
		case "full_name":
			records[i].DisplayName = value
		case "bio":
			records[i].Bio = value
		default:
			return fmt.Errorf("неизвестное поле %q", field)
		}
		records[i].LastUpdated = time.Now()
		found = true
		break
	}

	if !found {
		// Предупреждаем в логе, чтобы заметить аккаунты без метаданных
		log.Printf("[WARN] Patch %s: записи для %s нет, пропускаем", field, identity)
		return nil
	}
	return s.save(records)
}

// Remove удаляет запись identity. Повторный вызов для отсутствующей
// записи — безвредный no-op.
func (s *AccountStore) Remove(identity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return err
	}

	kept := records[:0]
	for _, r := range records {
		if r.Identity != identity {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return s.save(kept)
}

// All возвращает все записи в порядке их первого добавления.
func (s *AccountStore) All() ([]models.AccountRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Get возвращает запись identity или nil, если её нет в документе.
func (s *AccountStore) Get(identity string) (*models.AccountRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range records {
		if records[i].Identity == identity {
			return &records[i], nil
		}
	}
	return nil, nil
}
