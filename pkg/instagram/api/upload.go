package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// uploadPhoto передаёт байты изображения и возвращает upload_id,
// под которым платформа приняла файл.
func (c *HTTPClient) uploadPhoto(ctx context.Context, jpegData []byte) (string, error) {
	uploadID := strconv.FormatInt(time.Now().UnixMilli(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/rupload_igphoto/"+uploadID, bytes.NewReader(jpegData))
	if err != nil {
		return "", fmt.Errorf("не удалось подготовить загрузку фото: %w", err)
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	req.Header.Set("X-Entity-Name", uploadID)
	req.Header.Set("X-Entity-Length", strconv.Itoa(len(jpegData)))
	c.applyHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("не удалось загрузить фото: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("не удалось прочитать ответ загрузки: %w", err)
	}
	c.absorbResponse(resp)
	if resp.StatusCode >= 400 {
		return "", c.remoteFailure(resp.StatusCode, payload)
	}
	return uploadID, nil
}

// configure завершает публикацию загруженного файла.
func (c *HTTPClient) configure(ctx context.Context, path, uploadID, caption string) (*Media, error) {
	form := url.Values{}
	form.Set("upload_id", uploadID)
	if caption != "" {
		form.Set("caption", caption)
	}

	var out struct {
		Media Media `json:"media"`
	}
	if err := c.request(ctx, http.MethodPost, path, form, &out); err != nil {
		return nil, err
	}
	return &out.Media, nil
}

// PhotoUpload публикует фото в ленту.
func (c *HTTPClient) PhotoUpload(ctx context.Context, jpegData []byte, caption string) (*Media, error) {
	uploadID, err := c.uploadPhoto(ctx, jpegData)
	if err != nil {
		return nil, err
	}
	return c.configure(ctx, "media/configure/", uploadID, caption)
}

// PhotoUploadToStory публикует фото в историю.
func (c *HTTPClient) PhotoUploadToStory(ctx context.Context, jpegData []byte) (*Media, error) {
	uploadID, err := c.uploadPhoto(ctx, jpegData)
	if err != nil {
		return nil, err
	}
	return c.configure(ctx, "media/configure_to_story/", uploadID, "")
}
