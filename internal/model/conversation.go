package model

type PeerList []Peer

type Peer struct {
	UserID    string  `db:"id"`
	Nickname  string  `db:"nickname"`
	AvatarURL *string `db:"avatar_url"`
}

type Conversation struct {
	UserID                string
	Username              string
	RecipientProfileImage string
}
