package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"
)

var ErrReceiptNotFound error = errors.New("transaction receipt not found")

// NodeService wraps an RPC client so that every call is bounded by a timeout.
type NodeService struct {
	logs    *zap.SugaredLogger
	client  EthClient
	timeout time.Duration
}

func NewNodeService(logger *zap.SugaredLogger, ethClient EthClient, timeout time.Duration) *NodeService {
	return &NodeService{
		logs:    logger,
		client:  ethClient,
		timeout: timeout,
	}
}

func (s *NodeService) HeadBlock(ctx context.Context) (uint64, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	head, err := s.client.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("get block number: %w", err)
	}
	return head, nil
}

// DepositEvents returns the decodable Deposited events emitted by vault in
// [from, to], in chain order. Removed (reorged) logs are dropped.
func (s *NodeService) DepositEvents(ctx context.Context, vault common.Address, from, to uint64) ([]DepositEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	logs, err := s.client.FilterLogs(ctx, geth.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{vault},
		Topics:    [][]common.Hash{{DepositedTopic}},
	})
	if err != nil {
		return nil, fmt.Errorf("filter deposit logs [%d, %d]: %w", from, to, err)
	}

	events := make([]DepositEvent, 0, len(logs))
	for _, log := range logs {
		if log.Removed {
			continue
		}
		event, err := DecodeDeposit(log)
		if err != nil {
			s.logs.Warnw("skipping undecodable deposit log",
				"tx_hash", log.TxHash.Hex(),
				"block", log.BlockNumber,
				"error", err)
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

func (s *NodeService) Receipt(ctx context.Context, hash common.Hash) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	receipt, err := s.client.TransactionReceipt(ctx, hash)
	if err != nil {
		if errors.Is(err, geth.NotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, hash.Hex())
		}
		return nil, fmt.Errorf("get receipt %s: %w", hash.Hex(), err)
	}
	if receipt == nil || receipt.BlockNumber == nil {
		return nil, fmt.Errorf("%w: %s", ErrReceiptNotFound, hash.Hex())
	}
	return receipt, nil
}

func (s *NodeService) ChainID(ctx context.Context) (*big.Int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	id, err := s.client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("get chain id: %w", err)
	}
	return id, nil
}
