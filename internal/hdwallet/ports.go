package hdwallet

import (
	"context"

	"custodian/internal/audit"
	"custodian/internal/envelope"
	"custodian/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name KeyStore . KeyStore
type KeyStore interface {
	GetMnemonic(ctx context.Context, principalID string) (repository.MnemonicRecord, error)
	GetMnemonicByID(ctx context.Context, id, principalID string) (repository.MnemonicRecord, error)
	InsertMnemonicIfAbsent(ctx context.Context, record repository.MnemonicRecord) (repository.MnemonicRecord, bool, error)
	ReserveIndex(ctx context.Context, mnemonicID string) (uint32, error)
	SaveDerivedAddress(ctx context.Context, address repository.DerivedAddress, setDefault bool) (repository.DerivedAddress, error)
	FindDerivedAddress(ctx context.Context, principalID, address string) (repository.DerivedAddress, error)
}

//counterfeiter:generate -o fake -fake-name Sealer . Sealer
type Sealer interface {
	Seal(plaintext string) (envelope.Envelope, error)
	Open(env envelope.Envelope) (string, error)
}

//counterfeiter:generate -o fake -fake-name Limiter . Limiter
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name Auditor . Auditor
type Auditor interface {
	Record(ctx context.Context, entry audit.Entry)
}
