package user

import (
	"context"
	"encoding/json"
	"fmt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/message-service/internal/config"
	"github.com/s21platform/message-service/internal/model"
)

type Handler struct {
	repository DBRepo
}

func New(repo DBRepo) *Handler {
	return &Handler{
		repository: repo,
	}
}

// Handler applies one user event to the local users table.
// Deleting a user removes every message they sent or received.
func (h *Handler) Handler(ctx context.Context, in []byte) error {
	logger := logger_lib.FromContext(ctx, config.KeyLogger)
	logger.AddFuncName("UserEventHandler")

	var event model.UserEvent
	if err := json.Unmarshal(in, &event); err != nil {
		logger.Error(fmt.Sprintf("failed to unmarshal user event: %v", err))
		return fmt.Errorf("failed to unmarshal user event: %w", err)
	}

	if event.UserID == "" {
		logger.Warn("user event without user_id, skipping")
		return nil
	}

	switch event.Type {
	case model.UserCreatedEvent, model.UserUpdatedEvent:
		err := h.repository.UpsertUser(ctx, &model.User{
			ID:        event.UserID,
			Nickname:  event.Nickname,
			AvatarURL: event.AvatarURL,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to upsert user %s: %v", event.UserID, err))
			return err
		}

	case model.UserDeletedEvent:
		var removed int64
		err := h.repository.WithTx(ctx, func(ctx context.Context) error {
			var err error
			removed, err = h.repository.DeleteUserMessages(ctx, event.UserID)
			if err != nil {
				return err
			}

			return h.repository.DeleteUser(ctx, event.UserID)
		})
		if err != nil {
			logger.Error(fmt.Sprintf("failed to delete user %s: %v", event.UserID, err))
			return err
		}

		logger.Info(fmt.Sprintf("deleted user %s with %d messages", event.UserID, removed))

	default:
		logger.Warn(fmt.Sprintf("unknown user event type %q", event.Type))
	}

	return nil
}
