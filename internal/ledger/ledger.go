package ledger

import (
	"context"
	"errors"
	"fmt"

	"custodian/internal/audit"
	"custodian/internal/repository"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInsufficientBalance error = errors.New("insufficient balance")
	ErrInvalidAmount       error = errors.New("amount must be greater than zero")
	ErrInvalidSwap         error = errors.New("swap requires two different assets")
	ErrUnknownType         error = errors.New("unknown transaction type")
	ErrDuplicate           error = errors.New("transaction already processed")
)

// Round2 normalises an amount to the two decimal unit every balance is kept in.
func Round2(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(2)
}

// CreditAmount and DebitAmount bring an amount to two decimals so that the
// books never show more than was actually received or less than was spent.
func CreditAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundDown(2)
}

func DebitAmount(amount decimal.Decimal) decimal.Decimal {
	return amount.RoundUp(2)
}

type SwapRequest struct {
	WalletID  string
	FromAsset string
	ToAsset   string
	AmountIn  decimal.Decimal
	AmountOut decimal.Decimal
	Fee       decimal.Decimal
}

type SwapResult struct {
	From repository.Balance
	To   repository.Balance
}

// Settlement describes one recorded balance mutation. For swaps Asset is the
// sold asset and ToAsset/AmountOut the bought side. FeeOnChain marks a fee the
// chain already took out of AmountOut: it is recorded but not debited again.
type Settlement struct {
	PrincipalID   string
	WalletID      string
	Type          repository.TransactionType
	Asset         string
	ToAsset       string
	Network       string
	Amount        decimal.Decimal
	AmountOut     decimal.Decimal
	Fee           decimal.Decimal
	FeeOnChain    bool
	FromAddress   string
	ToAddress     string
	Reference     string
	TxHash        string
	Confirmations uint64
	ChainID       int64
}

type SettlementResult struct {
	Transaction repository.Transaction
	Balances    []repository.Balance
}

// Ledger is the only component that mutates balances.
type Ledger struct {
	logs    *zap.SugaredLogger
	store   Store
	auditor Auditor
}

func NewLedger(logger *zap.SugaredLogger, store Store, auditor Auditor) *Ledger {
	return &Ledger{
		logs:    logger,
		store:   store,
		auditor: auditor,
	}
}

func (l *Ledger) Balance(ctx context.Context, walletID, asset string) (repository.Balance, error) {
	balance, err := l.store.GetBalance(ctx, walletID, asset)
	if err != nil {
		return repository.Balance{}, fmt.Errorf("get balance: %w", err)
	}
	return normalize(balance), nil
}

func (l *Ledger) Credit(ctx context.Context, walletID, asset string, amount decimal.Decimal) (repository.Balance, error) {
	amount, err := positive(CreditAmount(amount))
	if err != nil {
		return repository.Balance{}, err
	}

	balances, err := l.apply(ctx, walletID, []repository.Leg{{Asset: asset, Delta: amount}}, nil)
	if err != nil {
		return repository.Balance{}, err
	}

	return balances[0], nil
}

func (l *Ledger) Debit(ctx context.Context, walletID, asset string, amount decimal.Decimal) (repository.Balance, error) {
	amount, err := positive(DebitAmount(amount))
	if err != nil {
		return repository.Balance{}, err
	}

	balances, err := l.apply(ctx, walletID, []repository.Leg{{Asset: asset, Delta: amount.Neg()}}, nil)
	if err != nil {
		return repository.Balance{}, err
	}

	return balances[0], nil
}

// Swap debits AmountIn+Fee of FromAsset and credits AmountOut of ToAsset as one unit.
func (l *Ledger) Swap(ctx context.Context, req SwapRequest) (SwapResult, error) {
	legs, _, _, err := swapLegs(req.FromAsset, req.ToAsset, req.AmountIn, req.AmountOut, req.Fee, false)
	if err != nil {
		return SwapResult{}, err
	}

	balances, err := l.apply(ctx, req.WalletID, legs, nil)
	if err != nil {
		return SwapResult{}, err
	}

	return SwapResult{From: balances[0], To: balances[1]}, nil
}

// Settle applies the balance legs implied by s together with its transaction
// record. A tx hash that was already settled yields ErrDuplicate and no change.
func (l *Ledger) Settle(ctx context.Context, s Settlement) (SettlementResult, error) {
	legs, amount, fee, err := settlementLegs(s)
	if err != nil {
		return SettlementResult{}, err
	}

	record := repository.Transaction{
		WalletID:      s.WalletID,
		Type:          s.Type,
		Status:        repository.StatusCompleted,
		Asset:         s.Asset,
		Network:       s.Network,
		Amount:        amount,
		Fee:           fee,
		FromAddress:   optional(s.FromAddress),
		ToAddress:     optional(s.ToAddress),
		Reference:     optional(s.Reference),
		TxHash:        optional(s.TxHash),
		Confirmations: s.Confirmations,
		ChainID:       s.ChainID,
	}

	balances, err := l.apply(ctx, s.WalletID, legs, &record)
	if err != nil {
		return SettlementResult{}, err
	}

	l.logs.Infow("settlement applied",
		"wallet_id", s.WalletID,
		"type", s.Type,
		"asset", s.Asset,
		"amount", record.Amount.StringFixed(2),
		"tx_hash", s.TxHash,
		"transaction_id", record.ID)

	actor := s.PrincipalID
	if actor == "" {
		actor = "wallet:" + s.WalletID
	}
	l.auditor.Record(ctx, audit.Entry{
		PrincipalID: actor,
		Action:      audit.ActionSettled,
		EntityID:    record.ID,
		Metadata: map[string]any{
			"walletId": s.WalletID,
			"type":     string(s.Type),
			"asset":    s.Asset,
			"amount":   record.Amount.StringFixed(2),
			"fee":      record.Fee.StringFixed(2),
			"txHash":   s.TxHash,
		},
	})

	return SettlementResult{Transaction: record, Balances: balances}, nil
}

func (l *Ledger) apply(ctx context.Context, walletID string, legs []repository.Leg, record *repository.Transaction) ([]repository.Balance, error) {
	balances, err := l.store.ApplyLegs(ctx, walletID, legs, record)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInsufficientFunds):
			return nil, ErrInsufficientBalance
		case errors.Is(err, repository.ErrDuplicateTransaction):
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("apply balance change: %w", err)
	}

	if len(balances) != len(legs) {
		return nil, fmt.Errorf("apply balance change: expected %d balances, got %d", len(legs), len(balances))
	}

	for i := range balances {
		balances[i] = normalize(balances[i])
	}
	return balances, nil
}

// settlementLegs returns the balance legs of s with the amount and fee recorded for it.
func settlementLegs(s Settlement) ([]repository.Leg, decimal.Decimal, decimal.Decimal, error) {
	switch s.Type {
	case repository.TypeTopUp, repository.TypeReceive:
		amount, err := positive(CreditAmount(s.Amount))
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, err
		}
		return []repository.Leg{{Asset: s.Asset, Delta: amount}}, amount, decimal.Zero, nil
	case repository.TypeSend:
		amount, err := positive(DebitAmount(s.Amount))
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, err
		}
		fee, err := nonNegative(DebitAmount(s.Fee))
		if err != nil {
			return nil, decimal.Zero, decimal.Zero, err
		}
		return []repository.Leg{{Asset: s.Asset, Delta: amount.Add(fee).Neg()}}, amount, fee, nil
	case repository.TypeSwap:
		return swapLegs(s.Asset, s.ToAsset, s.Amount, s.AmountOut, s.Fee, s.FeeOnChain)
	default:
		return nil, decimal.Zero, decimal.Zero, fmt.Errorf("%w: %q", ErrUnknownType, s.Type)
	}
}

// swapLegs debits amountIn and credits amountOut. The fee is debited on top
// of amountIn unless the chain already took it, in which case it is only
// returned for the record.
func swapLegs(fromAsset, toAsset string, amountIn, amountOut, fee decimal.Decimal, feeOnChain bool) ([]repository.Leg, decimal.Decimal, decimal.Decimal, error) {
	if fromAsset == "" || toAsset == "" || fromAsset == toAsset {
		return nil, decimal.Zero, decimal.Zero, ErrInvalidSwap
	}
	in, err := positive(DebitAmount(amountIn))
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	out, err := positive(CreditAmount(amountOut))
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	fee, err = nonNegative(DebitAmount(fee))
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}

	debit := in.Add(fee)
	if feeOnChain {
		debit = in
	}
	return []repository.Leg{
		{Asset: fromAsset, Delta: debit.Neg()},
		{Asset: toAsset, Delta: out},
	}, in, fee, nil
}

func positive(amount decimal.Decimal) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

func nonNegative(amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return amount, nil
}

func normalize(balance repository.Balance) repository.Balance {
	balance.Available = Round2(balance.Available)
	balance.Locked = Round2(balance.Locked)
	return balance
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
