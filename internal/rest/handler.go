package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/message-service/internal/config"
	api "github.com/s21platform/message-service/internal/generated"
	"github.com/s21platform/message-service/internal/model"
	"github.com/s21platform/message-service/internal/service/message"
)

type Handler struct {
	service      MessageService
	maxImageSize int64
}

func New(service MessageService, cfg config.Messaging) *Handler {
	return &Handler{
		service:      service,
		maxImageSize: cfg.MaxImageSize,
	}
}

func (h *Handler) GetConversations(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetConversations")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "unauthorized", nil, http.StatusUnauthorized)
		return
	}

	conversations, err := h.service.Conversations(r.Context(), requesterID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get conversations: %v", err))
		h.writeError(w, "internal server error", nil, http.StatusInternalServerError)
		return
	}

	response := make([]api.Conversation, len(conversations))
	for i, conversation := range conversations {
		response[i] = api.Conversation{
			Id:                    conversation.UserID,
			Username:              conversation.Username,
			RecipientProfileImage: conversation.RecipientProfileImage,
		}
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request, peerId api.PeerID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetThread")

	requesterID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get requester id")
		h.writeError(w, "unauthorized", nil, http.StatusUnauthorized)
		return
	}

	messages, err := h.service.Thread(r.Context(), requesterID, peerId)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get thread with %s: %v", peerId, err))
		h.writeError(w, "internal server error", nil, http.StatusInternalServerError)
		return
	}

	results := make([]api.Message, len(messages))
	for i, msg := range messages {
		results[i] = toAPIMessage(msg)
	}

	h.writeJSON(w, api.GetThreadResponse{Results: results}, http.StatusOK)
}

func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request, peerId api.PeerID) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendMessage")

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "unauthorized", nil, http.StatusUnauthorized)
		return
	}

	in, err := h.decodeNewMessage(w, r)
	if err != nil {
		// recipient errors outrank a malformed body
		if checkErr := h.service.CheckRecipient(r.Context(), senderID, peerId); checkErr != nil {
			h.writeSendError(w, logger, checkErr)
			return
		}
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", nil, http.StatusBadRequest)
		return
	}

	created, err := h.service.Send(r.Context(), senderID, peerId, in)
	if err != nil {
		h.writeSendError(w, logger, err)
		return
	}

	logger.Info(fmt.Sprintf("message %d sent from %s to %s", created.ID, senderID, peerId))

	h.writeJSON(w, toAPIMessage(*created), http.StatusCreated)
}

var sendErrors = []struct {
	err    error
	field  string
	status int
}{
	{message.ErrRecipientNotFound, "recipient", http.StatusNotFound},
	{message.ErrSelfMessage, "recipient", http.StatusBadRequest},
	{message.ErrInvalidImage, "image", http.StatusBadRequest},
	{message.ErrImageTooLarge, "image", http.StatusBadRequest},
	{message.ErrContentTooLong, "content", http.StatusBadRequest},
}

func (h *Handler) writeSendError(w http.ResponseWriter, logger logger_lib.LoggerInterface, err error) {
	for _, e := range sendErrors {
		if errors.Is(err, e.err) {
			logger.Info(fmt.Sprintf("message rejected: %v", err))
			field := e.field
			h.writeError(w, e.err.Error(), &field, e.status)
			return
		}
	}

	logger.Error(fmt.Sprintf("failed to send message: %v", err))
	h.writeError(w, "internal server error", nil, http.StatusInternalServerError)
}

func toAPIMessage(msg model.MessageView) api.Message {
	return api.Message{
		Id:                 msg.ID,
		Sender:             msg.Sender,
		Recipient:          msg.Recipient,
		Content:            msg.Content,
		Image:              msg.Image,
		Date:               msg.Date,
		Time:               msg.Time,
		Read:               msg.Read,
		SenderProfileImage: msg.SenderProfileImage,
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, field *string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message, Field: field})
}

// WriteParamError renders path parameter binding failures from the generated router.
func (h *Handler) WriteParamError(w http.ResponseWriter, _ *http.Request, err error) {
	h.writeError(w, err.Error(), nil, http.StatusBadRequest)
}
