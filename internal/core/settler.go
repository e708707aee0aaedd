package core

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"custodian/internal/hdwallet"
	"custodian/internal/ledger"
	"custodian/internal/repository"
	"custodian/internal/verification"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidSettlement error = errors.New("invalid settlement")
	ErrOnChainRequired   error = errors.New("settlement type requires an on-chain transaction")
	ErrAddressNotOwned   error = errors.New("address does not belong to principal")
)

// Settler turns a verified Settlement into a single ledger mutation.
type Settler struct {
	logs      *zap.SugaredLogger
	verifier  Verifier
	addresses AddressBook
	tokens    Tokens
	ledger    Ledger
	chainID   int64
}

func NewSettler(logger *zap.SugaredLogger, verifier Verifier, addresses AddressBook, tokens Tokens, ledger Ledger, chainID int64) *Settler {
	return &Settler{
		logs:      logger,
		verifier:  verifier,
		addresses: addresses,
		tokens:    tokens,
		ledger:    ledger,
		chainID:   chainID,
	}
}

// Settle checks the settlement with the strategy its variant calls for and
// applies it. Ledger errors such as ledger.ErrDuplicate are returned as is.
func (s *Settler) Settle(ctx context.Context, settlement Settlement) (ledger.SettlementResult, error) {
	if settlement == nil {
		return ledger.SettlementResult{}, fmt.Errorf("%w: empty settlement", ErrInvalidSettlement)
	}

	claim, err := normalize(settlement.claim())
	if err != nil {
		return ledger.SettlementResult{}, err
	}

	var entry ledger.Settlement
	switch v := settlement.(type) {
	case OnChainSettlement:
		entry, err = s.onChain(ctx, claim, v.TxHash)
	case OffChainSettlement:
		entry, err = s.offChain(claim)
	default:
		err = fmt.Errorf("%w: unknown variant %T", ErrInvalidSettlement, settlement)
	}
	if err != nil {
		return ledger.SettlementResult{}, err
	}

	return s.ledger.Settle(ctx, entry)
}

func (s *Settler) onChain(ctx context.Context, claim Claim, txHash string) (ledger.Settlement, error) {
	txHash = strings.ToLower(strings.TrimSpace(txHash))
	if txHash == "" {
		return ledger.Settlement{}, fmt.Errorf("%w: tx hash is required", ErrInvalidSettlement)
	}

	entry := baseEntry(claim)
	entry.TxHash = txHash
	entry.ChainID = s.chainID

	switch claim.Type {
	case repository.TypeTopUp, repository.TypeReceive:
		to, err := s.owned(ctx, claim.PrincipalID, claim.ToAddress, "to")
		if err != nil {
			return ledger.Settlement{}, err
		}
		transfer, err := s.verifier.VerifyDeposit(ctx, verification.DepositQuery{
			Network: claim.Network,
			Asset:   claim.Asset,
			TxHash:  txHash,
			To:      &to,
			Amount:  claim.Amount,
		})
		if err != nil {
			return ledger.Settlement{}, fmt.Errorf("verify deposit: %w", err)
		}
		entry.FromAddress = strings.ToLower(transfer.From.Hex())
		entry.ToAddress = strings.ToLower(transfer.To.Hex())

	case repository.TypeSend:
		from, err := s.owned(ctx, claim.PrincipalID, claim.FromAddress, "from")
		if err != nil {
			return ledger.Settlement{}, err
		}
		query := verification.SendQuery{
			Network: claim.Network,
			Asset:   claim.Asset,
			TxHash:  txHash,
			From:    &from,
			Amount:  claim.Amount,
		}
		if claim.ToAddress != "" {
			if !common.IsHexAddress(claim.ToAddress) {
				return ledger.Settlement{}, fmt.Errorf("%w: to address %q", ErrInvalidSettlement, claim.ToAddress)
			}
			to := common.HexToAddress(claim.ToAddress)
			query.To = &to
		}
		transfer, err := s.verifier.VerifySend(ctx, query)
		if err != nil {
			return ledger.Settlement{}, fmt.Errorf("verify send: %w", err)
		}
		entry.FromAddress = strings.ToLower(transfer.From.Hex())
		entry.ToAddress = strings.ToLower(transfer.To.Hex())

	case repository.TypeSwap:
		user, err := s.owned(ctx, claim.PrincipalID, claim.FromAddress, "from")
		if err != nil {
			return ledger.Settlement{}, err
		}
		fromToken, okFrom := s.tokens.Lookup(claim.Network, claim.Asset)
		toToken, okTo := s.tokens.Lookup(claim.Network, claim.ToAsset)
		if !okFrom || !okTo {
			return ledger.Settlement{}, fmt.Errorf("%w: swap %s to %s on %s", hdwallet.ErrUnsupported, claim.Asset, claim.ToAsset, claim.Network)
		}
		swap, err := s.verifier.VerifySwap(ctx, verification.SwapQuery{
			Network:   claim.Network,
			FromAsset: claim.Asset,
			TxHash:    txHash,
			User:      &user,
			AmountIn:  claim.Amount,
		})
		if err != nil {
			return ledger.Settlement{}, fmt.Errorf("verify swap: %w", err)
		}
		// the chain, not the client, decides what came out of the swap
		entry.AmountOut = decimal.NewFromBigInt(swap.AmountOut, -toToken.Decimals)
		entry.Fee = decimal.NewFromBigInt(swap.Fee, -fromToken.Decimals)
		entry.FeeOnChain = true

	default:
		return ledger.Settlement{}, fmt.Errorf("%w: %q", ledger.ErrUnknownType, claim.Type)
	}

	s.logs.Infow("on-chain settlement verified",
		"principal_id", claim.PrincipalID,
		"wallet_id", claim.WalletID,
		"type", claim.Type,
		"tx_hash", txHash)
	return entry, nil
}

func (s *Settler) offChain(claim Claim) (ledger.Settlement, error) {
	if claim.Type == repository.TypeReceive {
		return ledger.Settlement{}, ErrOnChainRequired
	}
	return baseEntry(claim), nil
}

// owned parses address and checks it is one of the principal's derived addresses.
func (s *Settler) owned(ctx context.Context, principalID, address, field string) (common.Address, error) {
	if !common.IsHexAddress(address) {
		return common.Address{}, fmt.Errorf("%w: %s address %q", ErrInvalidSettlement, field, address)
	}

	_, err := s.addresses.FindDerivedAddress(ctx, principalID, strings.ToLower(address))
	if err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return common.Address{}, fmt.Errorf("%w: %s", ErrAddressNotOwned, address)
		}
		return common.Address{}, fmt.Errorf("find derived address: %w", err)
	}

	return common.HexToAddress(address), nil
}

func normalize(claim Claim) (Claim, error) {
	if claim.WalletID == "" {
		return Claim{}, fmt.Errorf("%w: wallet is required", ErrInvalidSettlement)
	}
	claim.Type = repository.TransactionType(strings.ToUpper(strings.TrimSpace(string(claim.Type))))

	asset, err := hdwallet.NormalizeAsset(claim.Asset)
	if err != nil {
		return Claim{}, err
	}
	claim.Asset = asset

	if claim.Type == repository.TypeSwap {
		if claim.ToAsset, err = hdwallet.NormalizeAsset(claim.ToAsset); err != nil {
			return Claim{}, err
		}
	}

	if claim.Network, err = hdwallet.NormalizeNetwork(claim.Network); err != nil {
		return Claim{}, err
	}

	return claim, nil
}

func baseEntry(claim Claim) ledger.Settlement {
	return ledger.Settlement{
		PrincipalID: claim.PrincipalID,
		WalletID:    claim.WalletID,
		Type:        claim.Type,
		Asset:       claim.Asset,
		ToAsset:     claim.ToAsset,
		Network:     claim.Network,
		Amount:      claim.Amount,
		AmountOut:   claim.AmountOut,
		Fee:         claim.Fee,
		FromAddress: strings.ToLower(claim.FromAddress),
		ToAddress:   strings.ToLower(claim.ToAddress),
		Reference:   claim.Reference,
	}
}
