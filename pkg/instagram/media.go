package instagram

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"aig_go/models"
	"aig_go/pkg/instagram/api"
)

// LikePost ставит лайк публикации по её ссылке.
func (m *Manager) LikePost(ctx context.Context, identity string, creds models.CredentialSet, postURL string) error {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return err
	}

	mediaPK, err := client.MediaPKFromURL(postURL)
	if err != nil {
		return &TargetResolutionError{Target: postURL, Err: err}
	}
	if err := client.MediaLike(ctx, mediaPK); err != nil {
		return rejected("like", err)
	}

	log.Printf("[INFO] Лайк от %s поставлен публикации %s", identity, mediaPK)
	return nil
}

// CommentPost оставляет комментарий под публикацией по её ссылке.
func (m *Manager) CommentPost(ctx context.Context, identity string, creds models.CredentialSet, postURL, text string) error {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return err
	}

	mediaPK, err := client.MediaPKFromURL(postURL)
	if err != nil {
		return &TargetResolutionError{Target: postURL, Err: err}
	}
	if err := client.MediaComment(ctx, mediaPK, text); err != nil {
		return rejected("comment", err)
	}

	log.Printf("[INFO] Комментарий от %s оставлен под %s", identity, mediaPK)
	return nil
}

// DownloadPost скачивает медиа публикации в каталог MediaDir и
// возвращает путь сохранённого файла. Фото и альбомы сохраняются
// превью-кадром, видео — роликом.
func (m *Manager) DownloadPost(ctx context.Context, identity string, creds models.CredentialSet, postURL string) (string, error) {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return "", err
	}

	mediaPK, err := client.MediaPKFromURL(postURL)
	if err != nil {
		return "", &TargetResolutionError{Target: postURL, Err: err}
	}
	info, err := client.MediaInfo(ctx, mediaPK)
	if err != nil {
		return "", &TargetResolutionError{Target: postURL, Err: err}
	}

	var mediaURL, ext string
	switch info.MediaType {
	case api.MediaTypePhoto:
		mediaURL, ext = info.ThumbnailURL, ".jpg"
	case api.MediaTypeAlbum:
		if len(info.Resources) == 0 {
			return "", &MediaTypeUnsupportedError{MediaType: info.MediaType}
		}
		mediaURL, ext = info.Resources[0].ThumbnailURL, ".jpg"
	case api.MediaTypeVideo:
		mediaURL, ext = info.VideoURL, ".mp4"
	default:
		return "", &MediaTypeUnsupportedError{MediaType: info.MediaType}
	}

	data, err := client.DownloadByURL(ctx, mediaURL)
	if err != nil {
		return "", &DownloadError{URL: mediaURL, Err: err}
	}

	filePath := filepath.Join(m.MediaDir, mediaPK+ext)
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", fmt.Errorf("не удалось сохранить медиа %s: %w", filePath, err)
	}

	log.Printf("[INFO] Медиа %s скачано для %s: %s", mediaPK, identity, filePath)
	return filePath, nil
}

// DownloadProfilePicture скачивает аватар аккаунта в каталог ProfilesDir.
func (m *Manager) DownloadProfilePicture(ctx context.Context, identity string, creds models.CredentialSet) (string, error) {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return "", err
	}

	info, err := client.AccountInfo(ctx)
	if err != nil {
		return "", rejected("account_info", err)
	}

	picURL := info.ProfilePicURLHD
	if picURL == "" {
		picURL = info.ProfilePicURL
	}
	if picURL == "" {
		return "", &DownloadError{URL: picURL, Err: fmt.Errorf("у аккаунта нет аватара")}
	}

	data, err := client.DownloadByURL(ctx, picURL)
	if err != nil {
		return "", &DownloadError{URL: picURL, Err: err}
	}

	filePath := filepath.Join(m.ProfilesDir, identity+".jpg")
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return "", fmt.Errorf("не удалось сохранить аватар %s: %w", filePath, err)
	}

	log.Printf("[INFO] Аватар %s скачан: %s", identity, filePath)
	return filePath, nil
}
