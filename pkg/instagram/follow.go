package instagram

import (
	"context"
	"log"

	"aig_go/models"
)

// FollowUser подписывает identity на target (хэндл или числовой ID).
func (m *Manager) FollowUser(ctx context.Context, identity string, creds models.CredentialSet, target string) error {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return err
	}

	userID, err := m.resolveUser(ctx, client, target)
	if err != nil {
		return err
	}
	if err := client.UserFollow(ctx, userID); err != nil {
		return rejected("follow", err)
	}

	log.Printf("[INFO] %s подписан на %s (ID=%d)", identity, target, userID)
	return nil
}

// UnfollowUser отписывает identity от target.
func (m *Manager) UnfollowUser(ctx context.Context, identity string, creds models.CredentialSet, target string) error {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return err
	}

	userID, err := m.resolveUser(ctx, client, target)
	if err != nil {
		return err
	}
	if err := client.UserUnfollow(ctx, userID); err != nil {
		return rejected("unfollow", err)
	}

	log.Printf("[INFO] %s отписан от %s (ID=%d)", identity, target, userID)
	return nil
}
