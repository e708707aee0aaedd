package verification

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"custodian/internal/ethereum"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TransferQuery describes an ERC-20 transfer a client claims happened.
// Nil expectations are not checked.
type TransferQuery struct {
	Token  common.Address
	TxHash string
	From   *common.Address
	To     *common.Address
	Amount *big.Int
}

type DepositQuery struct {
	Network string
	Asset   string
	TxHash  string
	To      *common.Address
	Amount  decimal.Decimal
}

type SendQuery struct {
	Network string
	Asset   string
	TxHash  string
	From    *common.Address
	To      *common.Address
	Amount  decimal.Decimal
}

type MintQuery struct {
	TxHash   string
	Contract common.Address
	To       *common.Address
}

type SwapQuery struct {
	Network   string
	FromAsset string
	TxHash    string
	User      *common.Address
	AmountIn  decimal.Decimal
}

// Service checks client-submitted transaction hashes against the chain.
type Service struct {
	logs         *zap.SugaredLogger
	chain        ChainReader
	tokens       Tokens
	chainID      int64
	swapContract common.Address
}

func NewService(logger *zap.SugaredLogger, chain ChainReader, tokens Tokens, chainID int64, swapContract common.Address) *Service {
	return &Service{
		logs:         logger,
		chain:        chain,
		tokens:       tokens,
		chainID:      chainID,
		swapContract: swapContract,
	}
}

func (s *Service) VerifyTransferred(ctx context.Context, q TransferQuery) (ethereum.Transfer, error) {
	receipt, err := s.receipt(ctx, q.TxHash)
	if err != nil {
		return ethereum.Transfer{}, err
	}

	candidates := transferLogs(receipt, q.Token, 3)
	if len(candidates) == 0 {
		return ethereum.Transfer{}, mismatch("token", "no Transfer log emitted by %s", q.Token.Hex())
	}

	// a tx may move the same token several times; one log must satisfy all of q
	var (
		transfer ethereum.Transfer
		matched  bool
		first    error
	)
	for _, log := range candidates {
		decoded, err := ethereum.DecodeTransfer(log)
		if err != nil {
			err = mismatch("token", "undecodable Transfer log: %v", err)
		} else {
			err = q.check(decoded)
		}
		if err == nil {
			transfer, matched = decoded, true
			break
		}
		if first == nil {
			first = err
		}
	}
	if !matched {
		return ethereum.Transfer{}, first
	}

	s.logs.Infow("transfer verified",
		"tx_hash", q.TxHash,
		"token", q.Token.Hex(),
		"value", transfer.Value.String())
	return transfer, nil
}

// VerifyDeposit checks that amount of asset reached the To address.
func (s *Service) VerifyDeposit(ctx context.Context, q DepositQuery) (ethereum.Transfer, error) {
	token, expected, err := s.resolve(q.Network, q.Asset, q.Amount)
	if err != nil {
		return ethereum.Transfer{}, err
	}

	return s.VerifyTransferred(ctx, TransferQuery{
		Token:  token,
		TxHash: q.TxHash,
		To:     q.To,
		Amount: expected,
	})
}

// VerifySend checks that amount of asset left From for To.
func (s *Service) VerifySend(ctx context.Context, q SendQuery) (ethereum.Transfer, error) {
	token, expected, err := s.resolve(q.Network, q.Asset, q.Amount)
	if err != nil {
		return ethereum.Transfer{}, err
	}

	return s.VerifyTransferred(ctx, TransferQuery{
		Token:  token,
		TxHash: q.TxHash,
		From:   q.From,
		To:     q.To,
		Amount: expected,
	})
}

// VerifyNFTMint checks for an ERC-721 Transfer out of the zero address.
func (s *Service) VerifyNFTMint(ctx context.Context, q MintQuery) (ethereum.NFTTransfer, error) {
	receipt, err := s.receipt(ctx, q.TxHash)
	if err != nil {
		return ethereum.NFTTransfer{}, err
	}

	candidates := transferLogs(receipt, q.Contract, 4)
	if len(candidates) == 0 {
		return ethereum.NFTTransfer{}, mismatch("contract", "no ERC-721 Transfer log emitted by %s", q.Contract.Hex())
	}

	var first error
	for _, log := range candidates {
		transfer, err := ethereum.DecodeERC721Transfer(log)
		switch {
		case err != nil:
			err = mismatch("contract", "undecodable Transfer log: %v", err)
		case transfer.From != (common.Address{}):
			err = mismatch("from", "not a mint, sent by %s", transfer.From.Hex())
		case q.To != nil && transfer.To != *q.To:
			err = mismatch("to", "expected %s, got %s", q.To.Hex(), transfer.To.Hex())
		default:
			return transfer, nil
		}
		if first == nil {
			first = err
		}
	}

	return ethereum.NFTTransfer{}, first
}

// resolve returns the token contract and amount in base units, floored.
func (s *Service) resolve(network, asset string, amount decimal.Decimal) (common.Address, *big.Int, error) {
	token, ok := s.tokens.Lookup(network, asset)
	if !ok {
		return common.Address{}, nil, mismatch("asset", "%s is not supported on %s", asset, network)
	}
	if !amount.IsPositive() {
		return common.Address{}, nil, mismatch("amount", "must be greater than zero")
	}

	return token.Address, amount.Shift(token.Decimals).Floor().BigInt(), nil
}

// check reports the first field of t that differs from the expectations in q.
func (q TransferQuery) check(t ethereum.Transfer) error {
	if q.From != nil && t.From != *q.From {
		return mismatch("from", "expected %s, got %s", q.From.Hex(), t.From.Hex())
	}
	if q.To != nil && t.To != *q.To {
		return mismatch("to", "expected %s, got %s", q.To.Hex(), t.To.Hex())
	}
	if q.Amount != nil && t.Value.Cmp(q.Amount) != 0 {
		return mismatch("amount", "expected %s, got %s", q.Amount, t.Value)
	}
	return nil
}

// transferLogs returns the Transfer logs emitted by contract with the given
// topic count, in receipt order.
func transferLogs(receipt *types.Receipt, contract common.Address, topics int) []types.Log {
	var logs []types.Log
	for _, log := range receipt.Logs {
		if log == nil || log.Address != contract || len(log.Topics) != topics || log.Topics[0] != ethereum.TransferTopic {
			continue
		}
		logs = append(logs, *log)
	}
	return logs
}
