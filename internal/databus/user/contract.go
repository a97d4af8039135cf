//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package user

import (
	"context"

	"github.com/s21platform/message-service/internal/model"
)

type DBRepo interface {
	UpsertUser(ctx context.Context, user *model.User) error
	DeleteUserMessages(ctx context.Context, userID string) (int64, error)
	DeleteUser(ctx context.Context, userID string) error

	WithTx(ctx context.Context, cb func(ctx context.Context) error) error
}
