package ledger

import (
	"context"

	"custodian/internal/audit"
	"custodian/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	GetBalance(ctx context.Context, walletID, asset string) (repository.Balance, error)
	ApplyLegs(ctx context.Context, walletID string, legs []repository.Leg, record *repository.Transaction) ([]repository.Balance, error)
}

//counterfeiter:generate -o fake -fake-name Auditor . Auditor
type Auditor interface {
	Record(ctx context.Context, entry audit.Entry)
}
