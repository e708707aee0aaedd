package audit

import (
	"context"

	"custodian/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name Store . Store
type Store interface {
	SaveAuditLog(ctx context.Context, entry repository.AuditLog) error
}
