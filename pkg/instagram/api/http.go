package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL — адрес приватного API платформы.
const DefaultBaseURL = "https://i.instagram.com/api/v1"

// Settings — полное состояние клиента, достаточное для повторной
// авторизации без пароля. Сериализуется в файл сессии как есть.
type Settings struct {
	Device        DeviceSettings    `json:"device_settings"`
	UserAgent     string            `json:"user_agent"`
	Country       string            `json:"country"`
	CountryCode   int               `json:"country_code"`
	UUIDs         UUIDSet           `json:"uuids"`
	UserID        int64             `json:"user_id"`
	Username      string            `json:"username"`
	Authorization string            `json:"authorization"`
	Cookies       map[string]string `json:"cookies"`
}

// HTTPClient реализует Client поверх приватного HTTP API.
type HTTPClient struct {
	httpc    *http.Client
	baseURL  string
	settings Settings
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient создаёт клиент без сессии с отпечатком устройства
// по умолчанию. Пустой baseURL означает боевой адрес платформы.
func NewHTTPClient(baseURL string) *HTTPClient {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &HTTPClient{
		httpc:   &http.Client{Timeout: 30 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
		settings: Settings{
			Device:      DefaultDevice(),
			UserAgent:   DefaultUserAgent,
			Country:     "IN",
			CountryCode: 91,
			UUIDs:       NewUUIDSet(),
			Cookies:     map[string]string{},
		},
	}
}

func (c *HTTPClient) SetDevice(device DeviceSettings) { c.settings.Device = device }
func (c *HTTPClient) SetUserAgent(userAgent string)   { c.settings.UserAgent = userAgent }
func (c *HTTPClient) SetCountry(country string)       { c.settings.Country = country }
func (c *HTTPClient) SetCountryCode(code int)         { c.settings.CountryCode = code }

// LoadSettings восстанавливает состояние клиента из сохранённой сессии.
func (c *HTTPClient) LoadSettings(data []byte) error {
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("не удалось разобрать настройки сессии: %w", err)
	}
	if s.Cookies == nil {
		s.Cookies = map[string]string{}
	}
	c.settings = s
	return nil
}

// DumpSettings сериализует текущее состояние клиента для файла сессии.
func (c *HTTPClient) DumpSettings() ([]byte, error) {
	data, err := json.MarshalIndent(c.settings, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("не удалось сериализовать настройки сессии: %w", err)
	}
	return data, nil
}

// request выполняет вызов приватного API: подставляет заголовки
// устройства и авторизации, обновляет куки и токен из ответа,
// преобразует отказ платформы в типизированную ошибку.
func (c *HTTPClient) request(ctx context.Context, method, path string, form url.Values, out any) error {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+strings.TrimLeft(path, "/"), body)
	if err != nil {
		return fmt.Errorf("не удалось подготовить запрос %s: %w", path, err)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	c.applyHeaders(req)

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("не удалось выполнить запрос %s: %w", path, err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("не удалось прочитать ответ %s: %w", path, err)
	}
	c.absorbResponse(resp)

	if resp.StatusCode >= 400 {
		return c.remoteFailure(resp.StatusCode, payload)
	}
	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("не удалось разобрать ответ %s: %w", path, err)
		}
	}
	return nil
}

func (c *HTTPClient) applyHeaders(req *http.Request) {
	req.Header.Set("User-Agent", c.settings.UserAgent)
	req.Header.Set("X-IG-Device-ID", c.settings.UUIDs.ClientUUID)
	req.Header.Set("X-IG-Android-ID", c.settings.UUIDs.DeviceID)
	req.Header.Set("X-IG-App-Locale", "en_US")
	if c.settings.Authorization != "" {
		req.Header.Set("Authorization", c.settings.Authorization)
	}
	if len(c.settings.Cookies) > 0 {
		pairs := make([]string, 0, len(c.settings.Cookies))
		for name, value := range c.settings.Cookies {
			pairs = append(pairs, name+"="+value)
		}
		req.Header.Set("Cookie", strings.Join(pairs, "; "))
	}
}

// absorbResponse переносит куки и обновлённый токен авторизации
// из ответа в настройки — они часть сессии.
func (c *HTTPClient) absorbResponse(resp *http.Response) {
	for _, cookie := range resp.Cookies() {
		c.settings.Cookies[cookie.Name] = cookie.Value
	}
	if auth := resp.Header.Get("Ig-Set-Authorization"); auth != "" {
		c.settings.Authorization = auth
	}
}

func (c *HTTPClient) remoteFailure(status int, payload []byte) error {
	var fail struct {
		Message   string `json:"message"`
		ErrorType string `json:"error_type"`
	}
	_ = json.Unmarshal(payload, &fail)

	if fail.ErrorType == "bad_password" {
		return ErrBadPassword
	}
	return &RemoteError{Status: status, Kind: fail.ErrorType, Message: fail.Message}
}

// Login выполняет сетевую авторизацию по паролю и фиксирует
// полученного пользователя в настройках.
func (c *HTTPClient) Login(ctx context.Context, username, password string) error {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)
	form.Set("device_id", c.settings.UUIDs.DeviceID)
	form.Set("phone_id", c.settings.UUIDs.PhoneID)
	form.Set("guid", c.settings.UUIDs.ClientUUID)
	form.Set("country", c.settings.Country)
	form.Set("country_code", fmt.Sprintf("%d", c.settings.CountryCode))

	var out struct {
		LoggedInUser struct {
			PK       int64  `json:"pk"`
			Username string `json:"username"`
		} `json:"logged_in_user"`
	}
	if err := c.request(ctx, http.MethodPost, "accounts/login/", form, &out); err != nil {
		return err
	}

	c.settings.UserID = out.LoggedInUser.PK
	c.settings.Username = out.LoggedInUser.Username
	return nil
}
