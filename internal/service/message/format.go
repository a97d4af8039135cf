package message

import (
	"context"
	"fmt"

	"github.com/s21platform/message-service/internal/model"
)

const (
	dateLayout = "02 Jan 2006"
	timeLayout = "15:04"
)

// avatarCache memoizes avatar lookups within a single call.
type avatarCache map[string]string

func (s *Service) avatarFor(ctx context.Context, cache avatarCache, userID string) (string, error) {
	if url, ok := cache[userID]; ok {
		return url, nil
	}

	avatarURL, err := s.profiles.GetAvatarURL(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("failed to get avatar for %s: %w", userID, err)
	}

	url := s.defaultAvatarURL
	if avatarURL != nil && *avatarURL != "" {
		url = *avatarURL
	}

	cache[userID] = url
	return url, nil
}

func (s *Service) format(ctx context.Context, cache avatarCache, msg model.Message) (model.MessageView, error) {
	avatar, err := s.avatarFor(ctx, cache, msg.SenderID)
	if err != nil {
		return model.MessageView{}, err
	}

	ts := msg.Timestamp.In(s.location)

	return model.MessageView{
		ID:                 msg.ID,
		Sender:             msg.SenderID,
		Recipient:          msg.RecipientID,
		Content:            msg.Content,
		Image:              msg.Image,
		Date:               ts.Format(dateLayout),
		Time:               ts.Format(timeLayout),
		Read:               msg.Read,
		SenderProfileImage: avatar,
	}, nil
}

// Format maps a stored message to its external representation.
func (s *Service) Format(ctx context.Context, msg model.Message) (model.MessageView, error) {
	return s.format(ctx, avatarCache{}, msg)
}
