package message

import "errors"

var (
	ErrRecipientNotFound = errors.New("recipient does not exist")
	ErrSelfMessage       = errors.New("cannot message yourself")
	ErrInvalidImage      = errors.New("invalid image file")
	ErrImageTooLarge     = errors.New("image too large")
	ErrContentTooLong    = errors.New("content too long")
)
