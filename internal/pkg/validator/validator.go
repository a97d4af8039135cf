package validator

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

type Validator struct {
	validate         *validator.Validate
	maxContentLength int
}

func New(maxContentLength int) *Validator {
	return &Validator{
		validate:         validator.New(),
		maxContentLength: maxContentLength,
	}
}

func (v *Validator) ValidateContent(content string) error {
	if err := v.validate.Var(content, fmt.Sprintf("max=%d", v.maxContentLength)); err != nil {
		return fmt.Errorf("content exceeds maximum length of %d characters", v.maxContentLength)
	}

	return nil
}

// ValidateImage sniffs and decodes the image header and returns the detected MIME type.
// Only the leading bytes are inspected, so a truncated payload is still classified.
func (v *Validator) ValidateImage(data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("empty file")
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("unsupported content type %s", mime.String())
	}

	if _, _, err := image.DecodeConfig(bytes.NewReader(data)); err != nil {
		return "", fmt.Errorf("failed to decode %s image: %w", mime.String(), err)
	}

	return mime.String(), nil
}
