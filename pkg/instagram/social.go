package instagram

import (
	"context"
	"log"

	"aig_go/models"
	"aig_go/pkg/instagram/api"
)

// GetFollowers возвращает до limit подписчиков самого аккаунта.
func (m *Manager) GetFollowers(ctx context.Context, identity string, creds models.CredentialSet, limit int) ([]api.UserShort, error) {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return nil, err
	}

	userID, err := m.resolveUser(ctx, client, identity)
	if err != nil {
		return nil, err
	}
	followers, err := client.UserFollowers(ctx, userID, limit)
	if err != nil {
		return nil, rejected("followers", err)
	}

	log.Printf("[INFO] Получено %d подписчиков для %s", len(followers), identity)
	return followers, nil
}

// GetFollowing возвращает до limit подписок самого аккаунта.
func (m *Manager) GetFollowing(ctx context.Context, identity string, creds models.CredentialSet, limit int) ([]api.UserShort, error) {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return nil, err
	}

	userID, err := m.resolveUser(ctx, client, identity)
	if err != nil {
		return nil, err
	}
	following, err := client.UserFollowing(ctx, userID, limit)
	if err != nil {
		return nil, rejected("following", err)
	}

	log.Printf("[INFO] Получено %d подписок для %s", len(following), identity)
	return following, nil
}

// GetUserPosts возвращает последние публикации самого аккаунта.
func (m *Manager) GetUserPosts(ctx context.Context, identity string, creds models.CredentialSet, limit int) ([]api.Media, error) {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return nil, err
	}

	userID, err := m.resolveUser(ctx, client, identity)
	if err != nil {
		return nil, err
	}
	posts, err := client.UserMedias(ctx, userID, limit)
	if err != nil {
		return nil, rejected("user_medias", err)
	}

	log.Printf("[INFO] Получено %d публикаций для %s", len(posts), identity)
	return posts, nil
}
