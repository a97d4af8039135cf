package model

import (
	"time"
)

type MessageList []Message

// Message is a single directed message between two users. Rows are append-only.
type Message struct {
	ID          int64     `db:"id" json:"id"`
	SenderID    string    `db:"sender_id" json:"sender_id"`
	RecipientID string    `db:"recipient_id" json:"recipient_id"`
	Content     string    `db:"content" json:"content"`
	Image       *string   `db:"image" json:"image,omitempty"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
	Read        bool      `db:"read" json:"read"`
}

type Attachment struct {
	Filename string
	Data     []byte
	// Size is the number of bytes received, capped one byte above the accepted limit.
	Size int64
}

type NewMessage struct {
	Content string
	Image   *Attachment
}

// MessageView is the external shape of a Message.
type MessageView struct {
	ID                 int64   `json:"id"`
	Sender             string  `json:"sender"`
	Recipient          string  `json:"recipient"`
	Content            string  `json:"content"`
	Image              *string `json:"image"`
	Date               string  `json:"date"`
	Time               string  `json:"time"`
	Read               bool    `json:"read"`
	SenderProfileImage string  `json:"sender_profile_image"`
}
