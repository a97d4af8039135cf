package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"

	api "github.com/s21platform/message-service/internal/generated"
	"github.com/s21platform/message-service/internal/model"
)

const (
	maxFieldSize      = 64 << 10
	multipartOverhead = 1 << 20
)

// decodeNewMessage reads content and image from a JSON or multipart body.
// Sender and recipient fields in the body are ignored. The image is read up to
// one byte past the size limit so the service can reject it without buffering the rest.
func (h *Handler) decodeNewMessage(w http.ResponseWriter, r *http.Request) (model.NewMessage, error) {
	var in model.NewMessage

	if r.Body == nil || r.ContentLength == 0 {
		return in, nil
	}

	mediaType := "application/json"
	if ct := r.Header.Get("Content-Type"); ct != "" {
		parsed, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return in, fmt.Errorf("invalid content type: %w", err)
		}
		mediaType = parsed
	}

	switch mediaType {
	case "application/json":
		var req api.SendMessageRequest
		err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxFieldSize)).Decode(&req)
		if err != nil && !errors.Is(err, io.EOF) {
			return in, err
		}
		if req.Content != nil {
			in.Content = *req.Content
		}
		return in, nil
	case "multipart/form-data":
		r.Body = http.MaxBytesReader(w, r.Body, h.maxImageSize+multipartOverhead)
		return h.decodeMultipart(r)
	default:
		return in, fmt.Errorf("unsupported content type %s", mediaType)
	}
}

func (h *Handler) decodeMultipart(r *http.Request) (model.NewMessage, error) {
	var in model.NewMessage

	reader, err := r.MultipartReader()
	if err != nil {
		return in, err
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			return in, nil
		}
		if err != nil {
			return in, err
		}

		switch part.FormName() {
		case "content":
			data, err := io.ReadAll(io.LimitReader(part, maxFieldSize))
			if err != nil {
				return in, err
			}
			in.Content = string(data)
		case "image":
			data, err := io.ReadAll(io.LimitReader(part, h.maxImageSize+1))
			if err != nil {
				return in, err
			}
			if len(data) == 0 && part.FileName() == "" {
				continue
			}
			in.Image = &model.Attachment{
				Filename: part.FileName(),
				Data:     data,
				Size:     int64(len(data)),
			}
			if in.Image.Size > h.maxImageSize {
				return in, nil
			}
		}
	}
}
