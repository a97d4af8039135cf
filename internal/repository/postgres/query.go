package postgres

import (
	sq "github.com/Masterminds/squirrel"
)

var messageColumns = []string{
	"id",
	"sender_id",
	"recipient_id",
	"content",
	"image",
	"timestamp",
	"read",
}

// threadPredicate matches messages exchanged between a and b in either direction.
func threadPredicate(a, b string) sq.Sqlizer {
	return sq.Or{
		sq.And{
			sq.Eq{"sender_id": a},
			sq.Eq{"recipient_id": b},
		},
		sq.And{
			sq.Eq{"sender_id": b},
			sq.Eq{"recipient_id": a},
		},
	}
}

func participantPredicate(userID string) sq.Sqlizer {
	return sq.Or{
		sq.Eq{"sender_id": userID},
		sq.Eq{"recipient_id": userID},
	}
}

func conversationPeersQuery(userID string) sq.SelectBuilder {
	peers := sq.Select().
		Column("CASE WHEN m.sender_id = ? THEN m.recipient_id ELSE m.sender_id END AS peer_id", userID).
		From("messages m").
		Where(sq.Or{
			sq.Eq{"m.sender_id": userID},
			sq.Eq{"m.recipient_id": userID},
		})

	return sq.Select("u.id", "u.nickname", "u.avatar_url").
		FromSelect(peers.Distinct(), "p").
		Join("users u ON u.id = p.peer_id").
		OrderBy("u.nickname ASC", "u.id ASC").
		PlaceholderFormat(sq.Dollar)
}
