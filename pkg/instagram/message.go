package instagram

import (
	"context"
	"log"

	"aig_go/models"
)

// SendDM отправляет личное сообщение получателю от имени identity.
func (m *Manager) SendDM(ctx context.Context, identity string, creds models.CredentialSet, receiver, text string) error {
	client, err := m.client(ctx, identity, creds)
	if err != nil {
		return err
	}

	receiverID, err := m.resolveUser(ctx, client, receiver)
	if err != nil {
		return err
	}
	if err := client.DirectSend(ctx, text, []int64{receiverID}); err != nil {
		return rejected("direct_send", err)
	}

	log.Printf("[INFO] Сообщение от %s отправлено %s", identity, receiver)
	return nil
}
