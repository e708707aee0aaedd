package core

import (
	"context"

	"custodian/internal/config"
	"custodian/internal/ethereum"
	"custodian/internal/hdwallet"
	"custodian/internal/ledger"
	"custodian/internal/repository"
	"custodian/internal/verification"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name WalletRegistry . WalletRegistry
type WalletRegistry interface {
	DefaultWallet(ctx context.Context, principalID string) (repository.Wallet, error)
}

//counterfeiter:generate -o fake -fake-name AddressBook . AddressBook
type AddressBook interface {
	FindDerivedAddress(ctx context.Context, principalID, address string) (repository.DerivedAddress, error)
}

//counterfeiter:generate -o fake -fake-name KeyService . KeyService
type KeyService interface {
	GetOrCreateMnemonic(ctx context.Context, principalID, walletID, network string) (repository.MnemonicRecord, error)
	DeriveNextAddress(ctx context.Context, req hdwallet.DeriveRequest) (repository.DerivedAddress, error)
	GetPrivateKeyForAddress(ctx context.Context, req hdwallet.ExportRequest) (hdwallet.ExportedKey, error)
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	Balance(ctx context.Context, walletID, asset string) (repository.Balance, error)
	Settle(ctx context.Context, settlement ledger.Settlement) (ledger.SettlementResult, error)
}

//counterfeiter:generate -o fake -fake-name Verifier . Verifier
type Verifier interface {
	VerifyDeposit(ctx context.Context, q verification.DepositQuery) (ethereum.Transfer, error)
	VerifySend(ctx context.Context, q verification.SendQuery) (ethereum.Transfer, error)
	VerifySwap(ctx context.Context, q verification.SwapQuery) (ethereum.SwapEvent, error)
}

//counterfeiter:generate -o fake -fake-name Tokens . Tokens
type Tokens interface {
	Lookup(network, asset string) (config.Token, bool)
}
