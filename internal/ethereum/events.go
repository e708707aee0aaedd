package ethereum

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrUnexpectedLog error = errors.New("unexpected log shape")

const vaultABIJSON = `[
	{"anonymous":false,"type":"event","name":"Deposited","inputs":[
		{"indexed":true,"name":"user","type":"address"},
		{"indexed":true,"name":"token","type":"address"},
		{"indexed":false,"name":"amount","type":"uint256"},
		{"indexed":false,"name":"reference","type":"string"}]},
	{"anonymous":false,"type":"event","name":"Swap","inputs":[
		{"indexed":true,"name":"user","type":"address"},
		{"indexed":false,"name":"tokenIn","type":"address"},
		{"indexed":false,"name":"tokenOut","type":"address"},
		{"indexed":false,"name":"amountIn","type":"uint256"},
		{"indexed":false,"name":"amountOut","type":"uint256"},
		{"indexed":false,"name":"fee","type":"uint256"}]}
]`

var (
	vaultABI = mustParseABI(vaultABIJSON)

	DepositedTopic = vaultABI.Events["Deposited"].ID
	SwapTopic      = vaultABI.Events["Swap"].ID
	// TransferTopic is shared by ERC-20 and ERC-721 Transfer events.
	TransferTopic = crypto.Keccak256Hash([]byte("Transfer(address,address,uint256)"))
)

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("parse vault abi: %v", err))
	}
	return parsed
}

func DecodeDeposit(log types.Log) (DepositEvent, error) {
	if len(log.Topics) != 3 || log.Topics[0] != DepositedTopic {
		return DepositEvent{}, fmt.Errorf("%w: not a Deposited event", ErrUnexpectedLog)
	}

	values, err := vaultABI.Unpack("Deposited", log.Data)
	if err != nil {
		return DepositEvent{}, fmt.Errorf("unpack Deposited: %w", err)
	}
	if len(values) != 2 {
		return DepositEvent{}, fmt.Errorf("%w: Deposited has %d values", ErrUnexpectedLog, len(values))
	}

	amount, ok := values[0].(*big.Int)
	if !ok {
		return DepositEvent{}, fmt.Errorf("%w: Deposited amount", ErrUnexpectedLog)
	}
	reference, ok := values[1].(string)
	if !ok {
		return DepositEvent{}, fmt.Errorf("%w: Deposited reference", ErrUnexpectedLog)
	}

	return DepositEvent{
		TxHash:      log.TxHash,
		BlockNumber: log.BlockNumber,
		LogIndex:    log.Index,
		Contract:    log.Address,
		User:        common.BytesToAddress(log.Topics[1].Bytes()),
		Token:       common.BytesToAddress(log.Topics[2].Bytes()),
		Amount:      amount,
		Reference:   reference,
	}, nil
}

// DecodeTransfer decodes an ERC-20 Transfer, where the value lives in data.
func DecodeTransfer(log types.Log) (Transfer, error) {
	if len(log.Topics) != 3 || log.Topics[0] != TransferTopic {
		return Transfer{}, fmt.Errorf("%w: not an ERC-20 Transfer", ErrUnexpectedLog)
	}
	if len(log.Data) != common.HashLength {
		return Transfer{}, fmt.Errorf("%w: Transfer data is %d bytes", ErrUnexpectedLog, len(log.Data))
	}

	return Transfer{
		Contract: log.Address,
		From:     common.BytesToAddress(log.Topics[1].Bytes()),
		To:       common.BytesToAddress(log.Topics[2].Bytes()),
		Value:    new(big.Int).SetBytes(log.Data),
	}, nil
}

// DecodeERC721Transfer decodes a Transfer whose token id is the third indexed topic.
func DecodeERC721Transfer(log types.Log) (NFTTransfer, error) {
	if len(log.Topics) != 4 || log.Topics[0] != TransferTopic {
		return NFTTransfer{}, fmt.Errorf("%w: not an ERC-721 Transfer", ErrUnexpectedLog)
	}

	return NFTTransfer{
		Contract: log.Address,
		From:     common.BytesToAddress(log.Topics[1].Bytes()),
		To:       common.BytesToAddress(log.Topics[2].Bytes()),
		TokenID:  new(big.Int).SetBytes(log.Topics[3].Bytes()),
	}, nil
}

func DecodeSwap(log types.Log) (SwapEvent, error) {
	if len(log.Topics) != 2 || log.Topics[0] != SwapTopic {
		return SwapEvent{}, fmt.Errorf("%w: not a Swap event", ErrUnexpectedLog)
	}

	values, err := vaultABI.Unpack("Swap", log.Data)
	if err != nil {
		return SwapEvent{}, fmt.Errorf("unpack Swap: %w", err)
	}
	if len(values) != 5 {
		return SwapEvent{}, fmt.Errorf("%w: Swap has %d values", ErrUnexpectedLog, len(values))
	}

	tokenIn, okIn := values[0].(common.Address)
	tokenOut, okOut := values[1].(common.Address)
	amountIn, okAmountIn := values[2].(*big.Int)
	amountOut, okAmountOut := values[3].(*big.Int)
	fee, okFee := values[4].(*big.Int)
	if !okIn || !okOut || !okAmountIn || !okAmountOut || !okFee {
		return SwapEvent{}, fmt.Errorf("%w: Swap value types", ErrUnexpectedLog)
	}

	return SwapEvent{
		Contract:  log.Address,
		User:      common.BytesToAddress(log.Topics[1].Bytes()),
		TokenIn:   tokenIn,
		TokenOut:  tokenOut,
		AmountIn:  amountIn,
		AmountOut: amountOut,
		Fee:       fee,
	}, nil
}

// PackDeposit and PackSwap build the data section of the vault events.
func PackDeposit(amount *big.Int, reference string) ([]byte, error) {
	return vaultABI.Events["Deposited"].Inputs.NonIndexed().Pack(amount, reference)
}

func PackSwap(tokenIn, tokenOut common.Address, amountIn, amountOut, fee *big.Int) ([]byte, error) {
	return vaultABI.Events["Swap"].Inputs.NonIndexed().Pack(tokenIn, tokenOut, amountIn, amountOut, fee)
}
