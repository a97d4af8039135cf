//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package rest

import (
	"context"

	"github.com/s21platform/message-service/internal/model"
)

type MessageService interface {
	Conversations(ctx context.Context, requesterID string) ([]model.Conversation, error)
	Thread(ctx context.Context, requesterID, peerID string) ([]model.MessageView, error)
	CheckRecipient(ctx context.Context, requesterID, recipientID string) error
	Send(ctx context.Context, requesterID, recipientID string, in model.NewMessage) (*model.MessageView, error)
}
