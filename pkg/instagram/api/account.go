package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
)

// AccountInfo возвращает профиль текущего аккаунта.
func (c *HTTPClient) AccountInfo(ctx context.Context) (*AccountInfo, error) {
	var out struct {
		User AccountInfo `json:"user"`
	}
	if err := c.request(ctx, http.MethodGet, "accounts/current_user/?edit=true", nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

// AccountEdit отправляет только заполненные поля профиля.
func (c *HTTPClient) AccountEdit(ctx context.Context, edit AccountEdit) error {
	form := url.Values{}
	if edit.Username != nil {
		form.Set("username", *edit.Username)
	}
	if edit.FullName != nil {
		form.Set("full_name", *edit.FullName)
	}
	if edit.Biography != nil {
		form.Set("biography", *edit.Biography)
	}
	if len(form) == 0 {
		return nil
	}

	if err := c.request(ctx, http.MethodPost, "accounts/edit_profile/", form, nil); err != nil {
		return err
	}
	if edit.Username != nil {
		c.settings.Username = *edit.Username
	}
	return nil
}

// AccountChangePicture загружает новый аватар одним multipart-запросом.
func (c *HTTPClient) AccountChangePicture(ctx context.Context, jpegData []byte) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("profile_pic", "profile.jpg")
	if err != nil {
		return fmt.Errorf("не удалось собрать multipart-запрос: %w", err)
	}
	if _, err := part.Write(jpegData); err != nil {
		return fmt.Errorf("не удалось записать изображение в запрос: %w", err)
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("не удалось завершить multipart-запрос: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/accounts/change_profile_picture/", &buf)
	if err != nil {
		return fmt.Errorf("не удалось подготовить запрос смены аватара: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	c.applyHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("не удалось выполнить запрос смены аватара: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("не удалось прочитать ответ смены аватара: %w", err)
	}
	c.absorbResponse(resp)
	if resp.StatusCode >= 400 {
		return c.remoteFailure(resp.StatusCode, payload)
	}
	return nil
}
