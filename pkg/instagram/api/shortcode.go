package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Алфавит коротких кодов публикаций.
const shortcodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// MediaPKFromURL извлекает числовой идентификатор публикации из ссылки
// вида https://.../p/<code>/ без обращения к сети.
func (c *HTTPClient) MediaPKFromURL(rawURL string) (string, error) {
	return MediaPKFromURL(rawURL)
}

// MediaPKFromURL — общая реализация, вынесена для переиспользования в тестах.
func MediaPKFromURL(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("не удалось разобрать ссылку %s: %w", rawURL, err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	for i, segment := range segments {
		if segment != "p" && segment != "reel" && segment != "tv" {
			continue
		}
		if i+1 >= len(segments) || segments[i+1] == "" {
			break
		}
		return shortcodeToPK(segments[i+1])
	}
	return "", fmt.Errorf("в ссылке %s нет кода публикации", rawURL)
}

// shortcodeToPK декодирует короткий код в числовой идентификатор.
func shortcodeToPK(code string) (string, error) {
	var pk int64
	for _, r := range code {
		idx := strings.IndexRune(shortcodeAlphabet, r)
		if idx < 0 {
			return "", fmt.Errorf("недопустимый символ %q в коде публикации", r)
		}
		pk = pk*64 + int64(idx)
	}
	return strconv.FormatInt(pk, 10), nil
}
