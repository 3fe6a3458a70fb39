package api

import (
	"context"
	"fmt"
	"net/http"
)

// UserIDFromUsername возвращает числовой идентификатор пользователя по его хэндлу.
func (c *HTTPClient) UserIDFromUsername(ctx context.Context, username string) (int64, error) {
	var out struct {
		User struct {
			PK int64 `json:"pk"`
		} `json:"user"`
	}
	path := fmt.Sprintf("users/%s/usernameinfo/", username)
	if err := c.request(ctx, http.MethodGet, path, nil, &out); err != nil {
		return 0, err
	}
	return out.User.PK, nil
}

func (c *HTTPClient) UserFollow(ctx context.Context, userID int64) error {
	return c.request(ctx, http.MethodPost, fmt.Sprintf("friendships/create/%d/", userID), nil, nil)
}

func (c *HTTPClient) UserUnfollow(ctx context.Context, userID int64) error {
	return c.request(ctx, http.MethodPost, fmt.Sprintf("friendships/destroy/%d/", userID), nil, nil)
}

// UserFollowers возвращает до amount подписчиков пользователя.
func (c *HTTPClient) UserFollowers(ctx context.Context, userID int64, amount int) ([]UserShort, error) {
	var out struct {
		Users []UserShort `json:"users"`
	}
	path := fmt.Sprintf("friendships/%d/followers/?count=%d", userID, amount)
	if err := c.request(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// UserFollowing возвращает до amount подписок пользователя.
func (c *HTTPClient) UserFollowing(ctx context.Context, userID int64, amount int) ([]UserShort, error) {
	var out struct {
		Users []UserShort `json:"users"`
	}
	path := fmt.Sprintf("friendships/%d/following/?count=%d", userID, amount)
	if err := c.request(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Users, nil
}

// UserMedias возвращает последние публикации пользователя.
func (c *HTTPClient) UserMedias(ctx context.Context, userID int64, amount int) ([]Media, error) {
	var out struct {
		Items []Media `json:"items"`
	}
	path := fmt.Sprintf("feed/user/%d/?count=%d", userID, amount)
	if err := c.request(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}
