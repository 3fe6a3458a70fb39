package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

func (c *HTTPClient) MediaLike(ctx context.Context, mediaID string) error {
	return c.request(ctx, http.MethodPost, fmt.Sprintf("media/%s/like/", mediaID), nil, nil)
}

func (c *HTTPClient) MediaComment(ctx context.Context, mediaID, text string) error {
	form := url.Values{}
	form.Set("comment_text", text)
	return c.request(ctx, http.MethodPost, fmt.Sprintf("media/%s/comment/", mediaID), form, nil)
}

// MediaInfo возвращает публикацию по её числовому идентификатору.
func (c *HTTPClient) MediaInfo(ctx context.Context, mediaPK string) (*Media, error) {
	var out struct {
		Items []Media `json:"items"`
	}
	if err := c.request(ctx, http.MethodGet, fmt.Sprintf("media/%s/info/", mediaPK), nil, &out); err != nil {
		return nil, err
	}
	if len(out.Items) == 0 {
		return nil, fmt.Errorf("платформа не вернула публикацию %s", mediaPK)
	}
	return &out.Items[0], nil
}

// DownloadByURL скачивает файл по абсолютной ссылке CDN.
// Заголовки приватного API здесь не нужны, достаточно User-Agent.
func (c *HTTPClient) DownloadByURL(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("не удалось подготовить запрос к %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", c.settings.UserAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("не удалось скачать %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, &RemoteError{Status: resp.StatusCode, Message: "не удалось скачать файл"}
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("не удалось прочитать файл %s: %w", rawURL, err)
	}
	return data, nil
}
