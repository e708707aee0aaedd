package ethereum

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

type DepositEvent struct {
	TxHash      common.Hash
	BlockNumber uint64
	LogIndex    uint
	Contract    common.Address
	User        common.Address
	Token       common.Address
	Amount      *big.Int
	Reference   string
}

type Transfer struct {
	Contract common.Address
	From     common.Address
	To       common.Address
	Value    *big.Int
}

type NFTTransfer struct {
	Contract common.Address
	From     common.Address
	To       common.Address
	TokenID  *big.Int
}

type SwapEvent struct {
	Contract  common.Address
	User      common.Address
	TokenIn   common.Address
	TokenOut  common.Address
	AmountIn  *big.Int
	AmountOut *big.Int
	Fee       *big.Int
}
