package model

const (
	UserCreatedEvent = "created"
	UserUpdatedEvent = "updated"
	UserDeletedEvent = "deleted"
)

type User struct {
	ID        string  `db:"id"`
	Nickname  string  `db:"nickname"`
	AvatarURL *string `db:"avatar_url"`
}

type UserEvent struct {
	Type      string  `json:"type"`
	UserID    string  `json:"user_id"`
	Nickname  string  `json:"nickname"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}
