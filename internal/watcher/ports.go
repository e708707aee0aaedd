package watcher

import (
	"context"

	"custodian/internal/config"
	"custodian/internal/ethereum"
	"custodian/internal/ledger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	HeadBlock(ctx context.Context) (uint64, error)
	DepositEvents(ctx context.Context, vault common.Address, from, to uint64) ([]ethereum.DepositEvent, error)
	Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
}

//counterfeiter:generate -o fake -fake-name Ledger . Ledger
type Ledger interface {
	Settle(ctx context.Context, settlement ledger.Settlement) (ledger.SettlementResult, error)
}

//counterfeiter:generate -o fake -fake-name Registry . Registry
type Registry interface {
	TransactionExists(ctx context.Context, txHash string) (bool, error)
	WalletExists(ctx context.Context, walletID string) (bool, error)
}

//counterfeiter:generate -o fake -fake-name Tokens . Tokens
type Tokens interface {
	ByAddress(network string, address common.Address) (config.Token, bool)
}
