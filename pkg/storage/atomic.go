package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeFileAtomic записывает данные через временный файл с последующим
// переименованием. Обрыв посреди записи не оставляет усечённый файл
// под целевым именем: читатель увидит либо прежнее содержимое, либо новое.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("не удалось создать временный файл: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("не удалось записать временный файл: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("не удалось закрыть временный файл: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("не удалось заменить файл %s: %w", path, err)
	}
	return nil
}
