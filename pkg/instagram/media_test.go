package instagram

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"aig_go/pkg/instagram/api"
)

const testPostURL = "https://www.instagram.com/p/B/"

// TestDownloadPost_Photo проверяет сохранение фото превью-кадром.
func TestDownloadPost_Photo(t *testing.T) {
	state := &fakeState{accept: map[string]bool{"p1": true}}
	state.media = api.Media{PK: "1", MediaType: api.MediaTypePhoto, ThumbnailURL: "https://cdn/thumb.jpg"}
	state.download = []byte("jpeg-байты")
	m := newTestManager(t, state)
	seedSession(t, m, "alice")

	path, err := m.DownloadPost(context.Background(), "alice", testCreds("alice"), testPostURL)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Fatalf("фото должно сохраняться с расширением .jpg: %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("файл не записан: %v", err)
	}
	if string(data) != "jpeg-байты" {
		t.Fatalf("содержимое изменилось: %s", data)
	}
}

// TestDownloadPost_Video проверяет сохранение видео роликом.
func TestDownloadPost_Video(t *testing.T) {
	state := &fakeState{accept: map[string]bool{"p1": true}}
	state.media = api.Media{PK: "1", MediaType: api.MediaTypeVideo, VideoURL: "https://cdn/clip.mp4"}
	state.download = []byte("mp4-байты")
	m := newTestManager(t, state)
	seedSession(t, m, "alice")

	path, err := m.DownloadPost(context.Background(), "alice", testCreds("alice"), testPostURL)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !strings.HasSuffix(path, ".mp4") {
		t.Fatalf("видео должно сохраняться с расширением .mp4: %s", path)
	}
}

// TestDownloadPost_Album проверяет, что из альбома берётся первый элемент.
func TestDownloadPost_Album(t *testing.T) {
	state := &fakeState{accept: map[string]bool{"p1": true}}
	state.media = api.Media{
		PK:        "1",
		MediaType: api.MediaTypeAlbum,
		Resources: []api.MediaResource{
			{PK: "1-1", ThumbnailURL: "https://cdn/first.jpg"},
			{PK: "1-2", ThumbnailURL: "https://cdn/second.jpg"},
		},
	}
	state.download = []byte("первый кадр")
	m := newTestManager(t, state)
	seedSession(t, m, "alice")

	path, err := m.DownloadPost(context.Background(), "alice", testCreds("alice"), testPostURL)
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if !strings.HasSuffix(path, ".jpg") {
		t.Fatalf("альбом должен сохраняться кадром .jpg: %s", path)
	}
}

// TestDownloadPost_UnsupportedType проверяет отказ на неизвестном типе медиа.
func TestDownloadPost_UnsupportedType(t *testing.T) {
	state := &fakeState{accept: map[string]bool{"p1": true}}
	state.media = api.Media{PK: "1", MediaType: 5}
	m := newTestManager(t, state)
	seedSession(t, m, "alice")

	_, err := m.DownloadPost(context.Background(), "alice", testCreds("alice"), testPostURL)
	var typeErr *MediaTypeUnsupportedError
	if !errors.As(err, &typeErr) {
		t.Fatalf("ожидалась MediaTypeUnsupportedError, получено %v", err)
	}
	if typeErr.MediaType != 5 {
		t.Fatalf("в ошибке не тот тип медиа: %d", typeErr.MediaType)
	}
}

// TestDownloadPost_BadURL проверяет, что кривая ссылка не доходит до платформы.
func TestDownloadPost_BadURL(t *testing.T) {
	state := &fakeState{accept: map[string]bool{"p1": true}}
	m := newTestManager(t, state)
	seedSession(t, m, "alice")

	_, err := m.DownloadPost(context.Background(), "alice", testCreds("alice"), "https://www.instagram.com/alice/")
	var targetErr *TargetResolutionError
	if !errors.As(err, &targetErr) {
		t.Fatalf("ожидалась TargetResolutionError, получено %v", err)
	}
}
