package instagram

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"log"
	"os"

	// Регистрируем декодеры входных форматов
	_ "image/gif"
	_ "image/png"

	"aig_go/models"
	"aig_go/pkg/instagram/api"
)

// NormalizeJPEG приводит изображение к JPEG. Файлы, уже являющиеся
// JPEG, возвращаются без перекодирования.
func NormalizeJPEG(data []byte) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("не удалось декодировать изображение: %w", err)
	}
	if format == "jpeg" {
		return data, nil
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}); err != nil {
		return nil, fmt.Errorf("не удалось перекодировать изображение в JPEG: %w", err)
	}
	return buf.Bytes(), nil
}

// readImage проверяет локальный файл до каких-либо сетевых вызовов.
func readImage(imagePath string) ([]byte, error) {
	data, err := os.ReadFile(imagePath)
	if err != nil {
		return nil, &MediaInvalidError{Path: imagePath, Reason: "файл не читается"}
	}
	jpegData, err := NormalizeJPEG(data)
	if err != nil {
		return nil, &MediaInvalidError{Path: imagePath, Reason: err.Error()}
	}
	return jpegData, nil
}

// PostPhoto публикует фото в ленту identity.
func (m *Manager) PostPhoto(ctx context.Context, identity string, creds models.CredentialSet, imagePath, caption string) (*api.Media, error) {
	jpegData, err := readImage(imagePath)
	if err != nil {
		return nil, err
	}

	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return nil, err
	}
	media, err := client.PhotoUpload(ctx, jpegData, caption)
	if err != nil {
		return nil, &UploadError{Err: err}
	}

	log.Printf("[INFO] Фото опубликовано от %s: %s", identity, media.PK)
	return media, nil
}

// PostStory публикует фото в историю identity.
func (m *Manager) PostStory(ctx context.Context, identity string, creds models.CredentialSet, imagePath string) (*api.Media, error) {
	jpegData, err := readImage(imagePath)
	if err != nil {
		return nil, err
	}

	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return nil, err
	}
	story, err := client.PhotoUploadToStory(ctx, jpegData)
	if err != nil {
		return nil, &UploadError{Err: err}
	}

	log.Printf("[INFO] История опубликована от %s: %s", identity, story.PK)
	return story, nil
}
