package handler

import (
	"context"
	"net/http"

	"custodian/internal/core"
	"custodian/internal/hdwallet"
	"custodian/internal/ledger"
	"custodian/internal/repository"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CustodyService . CustodyService
type CustodyService interface {
	InitMnemonic(ctx context.Context, principalID, network string) (core.MnemonicInfo, error)
	DeriveAddress(ctx context.Context, req hdwallet.DeriveRequest) (repository.DerivedAddress, error)
	ExportKey(ctx context.Context, req hdwallet.ExportRequest) (hdwallet.ExportedKey, error)
	Settle(ctx context.Context, principalID string, settlement core.Settlement) (ledger.SettlementResult, error)
	Balance(ctx context.Context, principalID, asset string) (repository.Balance, error)
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeJSONPayload(r *http.Request, object any) error
}
