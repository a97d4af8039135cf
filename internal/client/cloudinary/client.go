package cloudinary

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"

	"github.com/s21platform/message-service/internal/config"
)

type Client struct {
	cld    *cloudinary.Cloudinary
	folder string
}

func New(cfg *config.Config) (*Client, error) {
	cld, err := cloudinary.NewFromURL(cfg.Cloudinary.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to init cloudinary: %w", err)
	}

	return &Client{
		cld:    cld,
		folder: cfg.Cloudinary.Folder,
	}, nil
}

// Upload stores an image and returns its public https URL.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	result, err := c.cld.Upload.Upload(ctx, bytes.NewReader(data), uploader.UploadParams{
		Folder:       c.folder,
		PublicID:     publicID(filename),
		ResourceType: "image",
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if result.Error.Message != "" {
		return "", fmt.Errorf("cloudinary error: %s", result.Error.Message)
	}

	return result.SecureURL, nil
}

func publicID(filename string) string {
	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	if base == "" || base == "." || base == "/" {
		return uuid.NewString()
	}
	return fmt.Sprintf("%s_%s", base, uuid.NewString())
}
