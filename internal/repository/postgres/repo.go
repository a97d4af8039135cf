package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/s21platform/message-service/internal/config"
	"github.com/s21platform/message-service/internal/model"
)

type ctxKey string

const keyTx = ctxKey("tx")

type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

type Repository struct {
	connection *sqlx.DB
}

func New(cfg *config.Config) *Repository {
	conStr := fmt.Sprintf("user=%s password=%s dbname=%s host=%s port=%s sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Database, cfg.Postgres.Host, cfg.Postgres.Port)

	conn, err := sqlx.Connect("postgres", conStr)
	if err != nil {
		log.Fatal("error connect: ", err)
	}

	return &Repository{
		connection: conn,
	}
}

func (r *Repository) Close() {
	_ = r.connection.Close()
}

// Chk returns the transaction bound to ctx, or the plain connection.
func (r *Repository) Chk(ctx context.Context) querier {
	if tx, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return tx
	}
	return r.connection
}

func (r *Repository) WithTx(ctx context.Context, cb func(ctx context.Context) error) error {
	if _, ok := ctx.Value(keyTx).(*sqlx.Tx); ok {
		return cb(ctx)
	}

	tx, err := r.connection.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := cb(context.WithValue(ctx, keyTx, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *Repository) SaveMessage(ctx context.Context, message *model.Message) error {
	query, args, err := sq.Insert("messages").
		Columns("sender_id", "recipient_id", "content", "image").
		Values(message.SenderID, message.RecipientID, message.Content, message.Image).
		Suffix("RETURNING id, timestamp, read").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %w", err)
	}

	err = r.Chk(ctx).QueryRowxContext(ctx, query, args...).Scan(&message.ID, &message.Timestamp, &message.Read)
	if err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return nil
}

func (r *Repository) GetThread(ctx context.Context, requesterID, peerID string) (model.MessageList, error) {
	query, args, err := sq.Select(messageColumns...).
		From("messages").
		Where(threadPredicate(requesterID, peerID)).
		OrderBy("timestamp ASC", "id ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %w", err)
	}

	messages := model.MessageList{}
	err = r.Chk(ctx).SelectContext(ctx, &messages, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get thread: %w", err)
	}

	return messages, nil
}

func (r *Repository) GetConversationPeers(ctx context.Context, userID string) (model.PeerList, error) {
	query, args, err := conversationPeersQuery(userID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %w", err)
	}

	peers := model.PeerList{}
	err = r.Chk(ctx).SelectContext(ctx, &peers, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversation peers: %w", err)
	}

	return peers, nil
}

func (r *Repository) UserExists(ctx context.Context, userID string) (bool, error) {
	query, args, err := sq.
		Select("COUNT(*) > 0").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build sql query: %w", err)
	}

	var exists bool
	err = r.Chk(ctx).GetContext(ctx, &exists, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}

	return exists, nil
}

// GetAvatarURL returns nil when the user has no avatar configured or is unknown.
func (r *Repository) GetAvatarURL(ctx context.Context, userID string) (*string, error) {
	query, args, err := sq.Select("avatar_url").
		From("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build sql query: %w", err)
	}

	var avatarURL *string
	err = r.Chk(ctx).GetContext(ctx, &avatarURL, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get avatar url: %w", err)
	}

	return avatarURL, nil
}

func (r *Repository) UpsertUser(ctx context.Context, user *model.User) error {
	query, args, err := sq.Insert("users").
		Columns("id", "nickname", "avatar_url").
		Values(user.ID, user.Nickname, user.AvatarURL).
		Suffix("ON CONFLICT (id) DO UPDATE SET nickname = EXCLUDED.nickname, avatar_url = EXCLUDED.avatar_url").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %w", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

func (r *Repository) DeleteUserMessages(ctx context.Context, userID string) (int64, error) {
	query, args, err := sq.Delete("messages").
		Where(participantPredicate(userID)).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build sql query: %w", err)
	}

	res, err := r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete user messages: %w", err)
	}

	return res.RowsAffected()
}

func (r *Repository) DeleteUser(ctx context.Context, userID string) error {
	query, args, err := sq.Delete("users").
		Where(sq.Eq{"id": userID}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build sql query: %w", err)
	}

	_, err = r.Chk(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return nil
}
