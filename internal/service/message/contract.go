//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package message

import (
	"context"

	"github.com/s21platform/message-service/internal/model"
)

type DBRepo interface {
	SaveMessage(ctx context.Context, message *model.Message) error
	GetThread(ctx context.Context, requesterID, peerID string) (model.MessageList, error)
	GetConversationPeers(ctx context.Context, userID string) (model.PeerList, error)
	UserExists(ctx context.Context, userID string) (bool, error)
}

type ProfileClient interface {
	GetAvatarURL(ctx context.Context, userID string) (*string, error)
}

type ImageStorage interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}

type CentrifugeClient interface {
	UserChannel(userID string) string
	Publish(ctx context.Context, channel string, data model.MessageView) error
}

type Validator interface {
	ValidateContent(content string) error
	ValidateImage(data []byte) (string, error)
}
