package verification

import (
	"context"
	"math/big"

	"custodian/internal/config"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ChainReader . ChainReader
type ChainReader interface {
	Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

//counterfeiter:generate -o fake -fake-name Tokens . Tokens
type Tokens interface {
	Lookup(network, asset string) (config.Token, bool)
}
