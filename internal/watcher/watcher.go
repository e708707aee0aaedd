package watcher

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"custodian/internal/ethereum"
	"custodian/internal/ledger"
	"custodian/internal/repository"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrMalformedReference error = errors.New("malformed deposit reference")

var referencePattern = regexp.MustCompile(`^w_([0-9a-f]{24})$`)

// ParseReference extracts the wallet id from a "w_<24 hex>" deposit reference.
func ParseReference(reference string) (string, error) {
	match := referencePattern.FindStringSubmatch(reference)
	if match == nil {
		return "", fmt.Errorf("%w: %q", ErrMalformedReference, reference)
	}
	return match[1], nil
}

type Outcome string

const (
	OutcomeCredited      Outcome = "credited"
	OutcomeDuplicate     Outcome = "duplicate"
	OutcomeDeferred      Outcome = "deferred"
	OutcomeUnattributed  Outcome = "unattributed"
	OutcomeUnknownToken  Outcome = "unknown_token"
	OutcomeInvalidAmount Outcome = "invalid_amount"
)

type Config struct {
	Vault         common.Address
	Network       string
	ChainID       int64
	Confirmations uint64
	PollInterval  time.Duration
	MaxRange      uint64
}

// Watcher credits vault deposits once they are deep enough in the chain.
// Idempotency comes from the tx hash, so overlapping ranges are harmless.
type Watcher struct {
	logs     *zap.SugaredLogger
	cfg      Config
	chain    ChainReader
	ledger   Ledger
	registry Registry
	tokens   Tokens

	mu          sync.Mutex
	cursor      uint64
	initialized bool
}

func NewWatcher(logger *zap.SugaredLogger, cfg Config, chain ChainReader, ledger Ledger, registry Registry, tokens Tokens) *Watcher {
	if cfg.MaxRange == 0 {
		cfg.MaxRange = 2000
	}
	return &Watcher{
		logs:     logger,
		cfg:      cfg,
		chain:    chain,
		ledger:   ledger,
		registry: registry,
		tokens:   tokens,
	}
}

// Cursor returns the last block whose events are fully handled.
func (w *Watcher) Cursor() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.cursor
}

// Run polls until ctx is done. A failed cycle is logged and retried on the
// next tick with the cursor unchanged.
func (w *Watcher) Run(ctx context.Context) {
	w.logs.Infow("deposit watcher started",
		"vault", w.cfg.Vault.Hex(),
		"network", w.cfg.Network,
		"confirmations", w.cfg.Confirmations,
		"poll_interval", w.cfg.PollInterval.String())

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logs.Infow("deposit watcher stopped", "cursor", w.Cursor())
			return
		case <-timer.C:
		}

		if err := w.Poll(ctx); err != nil && ctx.Err() == nil {
			w.logs.Errorw("deposit watcher cycle failed",
				"error", err,
				"cursor", w.Cursor())
		}
		timer.Reset(w.cfg.PollInterval)
	}
}

// Poll runs one cycle. The first cycle only pins the cursor to the chain head.
func (w *Watcher) Poll(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	head, err := w.chain.HeadBlock(ctx)
	if err != nil {
		return fmt.Errorf("fetch head: %w", err)
	}

	if !w.initialized {
		w.cursor = head
		w.initialized = true
		w.logs.Infow("deposit watcher cursor initialised", "cursor", head)
		return nil
	}

	if head < w.cfg.Confirmations {
		return nil
	}
	from := w.cursor + 1
	to := min(head-w.cfg.Confirmations, from+w.cfg.MaxRange-1)
	if from > to {
		return nil
	}

	events, err := w.chain.DepositEvents(ctx, w.cfg.Vault, from, to)
	if err != nil {
		return fmt.Errorf("fetch events [%d, %d]: %w", from, to, err)
	}

	next := to
	for _, event := range events {
		outcome, err := w.ProcessEvent(ctx, event, head)
		if err != nil {
			return fmt.Errorf("process event %s: %w", event.TxHash.Hex(), err)
		}
		if outcome == OutcomeDeferred && event.BlockNumber-1 < next {
			next = event.BlockNumber - 1
		}
	}

	w.cursor = next
	w.logs.Infow("deposit watcher range processed",
		"from", from,
		"to", to,
		"events", len(events),
		"cursor", next)
	return nil
}

// ProcessEvent credits a single deposit if it is new, deep enough and
// attributable. Only infrastructure failures are returned as errors.
func (w *Watcher) ProcessEvent(ctx context.Context, event ethereum.DepositEvent, head uint64) (Outcome, error) {
	txHash := event.TxHash.Hex()

	exists, err := w.registry.TransactionExists(ctx, txHash)
	if err != nil {
		return "", fmt.Errorf("check transaction: %w", err)
	}
	if exists {
		return OutcomeDuplicate, nil
	}

	receipt, err := w.chain.Receipt(ctx, event.TxHash)
	if err != nil {
		if errors.Is(err, ethereum.ErrReceiptNotFound) {
			return OutcomeDeferred, nil
		}
		return "", fmt.Errorf("fetch receipt: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		w.logs.Warnw("deposit from failed transaction ignored", "tx_hash", txHash)
		return OutcomeUnattributed, nil
	}

	var confirmations uint64
	if block := receipt.BlockNumber.Uint64(); head > block {
		confirmations = head - block
	}
	if confirmations < w.cfg.Confirmations {
		w.logs.Infow("deposit awaiting confirmations",
			"tx_hash", txHash,
			"confirmations", confirmations,
			"required", w.cfg.Confirmations)
		return OutcomeDeferred, nil
	}

	walletID, err := ParseReference(event.Reference)
	if err != nil {
		w.logs.Warnw("unattributable deposit dropped",
			"tx_hash", txHash,
			"reference", event.Reference,
			"error", err)
		return OutcomeUnattributed, nil
	}

	found, err := w.registry.WalletExists(ctx, walletID)
	if err != nil {
		return "", fmt.Errorf("check wallet: %w", err)
	}
	if !found {
		w.logs.Warnw("deposit for unknown wallet dropped",
			"tx_hash", txHash,
			"wallet_id", walletID)
		return OutcomeUnattributed, nil
	}

	token, ok := w.tokens.ByAddress(w.cfg.Network, event.Token)
	if !ok {
		w.logs.Warnw("deposit of unknown token dropped",
			"tx_hash", txHash,
			"token", event.Token.Hex(),
			"wallet_id", walletID)
		return OutcomeUnknownToken, nil
	}

	amount := ledger.CreditAmount(decimal.NewFromBigInt(event.Amount, -token.Decimals))

	_, err = w.ledger.Settle(ctx, ledger.Settlement{
		WalletID:      walletID,
		Type:          repository.TypeReceive,
		Asset:         token.Asset,
		Network:       w.cfg.Network,
		Amount:        amount,
		FromAddress:   strings.ToLower(event.User.Hex()),
		Reference:     event.Reference,
		TxHash:        txHash,
		Confirmations: confirmations,
		ChainID:       w.cfg.ChainID,
	})
	switch {
	case errors.Is(err, ledger.ErrDuplicate):
		return OutcomeDuplicate, nil
	case errors.Is(err, ledger.ErrInvalidAmount):
		w.logs.Warnw("deposit below ledger precision dropped",
			"tx_hash", txHash,
			"raw_amount", event.Amount.String())
		return OutcomeInvalidAmount, nil
	case err != nil:
		return "", fmt.Errorf("settle deposit: %w", err)
	}

	w.logs.Infow("deposit credited",
		"tx_hash", txHash,
		"wallet_id", walletID,
		"asset", token.Asset,
		"amount", amount.StringFixed(2),
		"confirmations", confirmations)
	return OutcomeCredited, nil
}
