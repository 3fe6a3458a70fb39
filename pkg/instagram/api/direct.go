package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// DirectSend отправляет текстовое сообщение перечисленным пользователям.
func (c *HTTPClient) DirectSend(ctx context.Context, text string, userIDs []int64) error {
	ids := make([]string, len(userIDs))
	for i, id := range userIDs {
		ids[i] = fmt.Sprintf("%d", id)
	}

	form := url.Values{}
	form.Set("text", text)
	// Платформа ожидает список списков получателей
	form.Set("recipient_users", "[["+strings.Join(ids, ",")+"]]")
	return c.request(ctx, http.MethodPost, "direct_v2/threads/broadcast/text/", form, nil)
}
