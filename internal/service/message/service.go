package message

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/message-service/internal/config"
	"github.com/s21platform/message-service/internal/model"
)

type Service struct {
	repository       DBRepo
	profiles         ProfileClient
	storage          ImageStorage
	centrifugeClient CentrifugeClient
	validator        Validator
	defaultAvatarURL string
	maxImageSize     int64
	location         *time.Location
}

func New(
	repo DBRepo,
	profiles ProfileClient,
	storage ImageStorage,
	centrifugeClient CentrifugeClient,
	validator Validator,
	cfg config.Messaging,
) *Service {
	return &Service{
		repository:       repo,
		profiles:         profiles,
		storage:          storage,
		centrifugeClient: centrifugeClient,
		validator:        validator,
		defaultAvatarURL: cfg.DefaultAvatarURL,
		maxImageSize:     cfg.MaxImageSize,
		location:         time.UTC,
	}
}

// Conversations lists every distinct peer the requester has exchanged messages with.
func (s *Service) Conversations(ctx context.Context, requesterID string) ([]model.Conversation, error) {
	peers, err := s.repository.GetConversationPeers(ctx, requesterID)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation peers: %w", err)
	}

	peers = lo.UniqBy(peers, func(p model.Peer) string { return p.UserID })

	return lo.Map(peers, func(p model.Peer, _ int) model.Conversation {
		avatar := s.defaultAvatarURL
		if p.AvatarURL != nil && *p.AvatarURL != "" {
			avatar = *p.AvatarURL
		}

		return model.Conversation{
			UserID:                p.UserID,
			Username:              p.Nickname,
			RecipientProfileImage: avatar,
		}
	}), nil
}

// Thread returns the messages between requester and peer, oldest first.
// A peer id that is not a user id has no history.
func (s *Service) Thread(ctx context.Context, requesterID, peerID string) ([]model.MessageView, error) {
	if _, err := uuid.Parse(peerID); err != nil {
		return []model.MessageView{}, nil
	}

	messages, err := s.repository.GetThread(ctx, requesterID, peerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}

	cache := avatarCache{}
	views := make([]model.MessageView, 0, len(messages))
	for _, msg := range messages {
		view, err := s.format(ctx, cache, msg)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// CheckRecipient reports whether requester may message recipient at all.
func (s *Service) CheckRecipient(ctx context.Context, requesterID, recipientID string) error {
	if _, err := uuid.Parse(recipientID); err != nil {
		return ErrRecipientNotFound
	}

	exists, err := s.repository.UserExists(ctx, recipientID)
	if err != nil {
		return fmt.Errorf("failed to check recipient: %w", err)
	}
	if !exists {
		return ErrRecipientNotFound
	}

	if recipientID == requesterID {
		return ErrSelfMessage
	}

	return nil
}

// Send validates and stores a message from requester to recipient.
// All checks run before anything is uploaded or persisted.
func (s *Service) Send(ctx context.Context, requesterID, recipientID string, in model.NewMessage) (*model.MessageView, error) {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)

	if err := s.CheckRecipient(ctx, requesterID, recipientID); err != nil {
		return nil, err
	}

	if in.Image != nil {
		if _, err := s.validator.ValidateImage(in.Image.Data); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidImage, err)
		}

		if in.Image.Size > s.maxImageSize {
			return nil, ErrImageTooLarge
		}
	}

	if err := s.validator.ValidateContent(in.Content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrContentTooLong, err)
	}

	message := model.Message{
		SenderID:    requesterID,
		RecipientID: recipientID,
		Content:     in.Content,
	}

	if in.Image != nil {
		url, err := s.storage.Upload(ctx, in.Image.Filename, in.Image.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to store image: %w", err)
		}
		message.Image = &url
	}

	if err := s.repository.SaveMessage(ctx, &message); err != nil {
		return nil, fmt.Errorf("failed to save message: %w", err)
	}

	view, err := s.Format(ctx, message)
	if err != nil {
		return nil, err
	}

	if err := s.centrifugeClient.Publish(ctx, s.centrifugeClient.UserChannel(recipientID), view); err != nil {
		logger.Warn(fmt.Sprintf("failed to publish message %d: %v", message.ID, err))
	}

	return &view, nil
}
