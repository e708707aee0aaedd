package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	creditStatement = `INSERT INTO balances (wallet_id, asset, available, locked, updated_at) VALUES (?, ?, ?, 0, ?)
ON CONFLICT (wallet_id, asset) DO UPDATE SET available = balances.available + EXCLUDED.available, updated_at = EXCLUDED.updated_at
RETURNING wallet_id, asset, available, locked, updated_at`

	// the available >= amount guard makes concurrent debits serialise on the row lock
	debitStatement = `UPDATE balances SET available = available - ?, updated_at = ?
WHERE wallet_id = ? AND asset = ? AND available >= ?
RETURNING wallet_id, asset, available, locked, updated_at`
)

func (r *Repository) GetBalance(ctx context.Context, walletID, asset string) (Balance, error) {
	var balances []Balance

	err := r.db.WithContext(ctx).Where("wallet_id = ? AND asset = ?", walletID, asset).Limit(1).Find(&balances).Error
	if err != nil {
		return Balance{}, fmt.Errorf("get balance: %w", err)
	}

	if len(balances) == 0 {
		return Balance{
			WalletID:  walletID,
			Asset:     asset,
			Available: decimal.Zero,
			Locked:    decimal.Zero,
		}, nil
	}

	return balances[0], nil
}

// ApplyLegs records the optional transaction and applies every leg in one
// database transaction. A record whose tx hash is already stored aborts the
// whole unit with ErrDuplicateTransaction; a failing debit aborts it with
// ErrInsufficientFunds.
func (r *Repository) ApplyLegs(ctx context.Context, walletID string, legs []Leg, record *Transaction) ([]Balance, error) {
	var balances []Balance

	err := r.db.Atomic(ctx, func(tx *gorm.DB) error {
		balances = make([]Balance, 0, len(legs))

		if record != nil {
			if err := insertTransaction(tx, record); err != nil {
				return err
			}
		}

		for _, leg := range legs {
			var (
				balance Balance
				err     error
			)
			if leg.Delta.IsNegative() {
				balance, err = debit(tx, walletID, leg.Asset, leg.Delta.Neg())
			} else {
				balance, err = credit(tx, walletID, leg.Asset, leg.Delta)
			}
			if err != nil {
				return err
			}
			balances = append(balances, balance)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return balances, nil
}

func (r *Repository) TransactionExists(ctx context.Context, txHash string) (bool, error) {
	exists, err := r.db.Exists(ctx, &Transaction{}, "tx_hash", txHash)
	if err != nil {
		return false, fmt.Errorf("check transaction: %w", err)
	}
	return exists, nil
}

func credit(tx *gorm.DB, walletID, asset string, amount decimal.Decimal) (Balance, error) {
	var balance Balance

	res := tx.Raw(creditStatement, walletID, asset, amount, time.Now().UTC()).Scan(&balance)
	if res.Error != nil {
		return Balance{}, fmt.Errorf("credit %s: %w", asset, res.Error)
	}

	return balance, nil
}

func debit(tx *gorm.DB, walletID, asset string, amount decimal.Decimal) (Balance, error) {
	var balance Balance

	res := tx.Raw(debitStatement, amount, time.Now().UTC(), walletID, asset, amount).Scan(&balance)
	if res.Error != nil {
		return Balance{}, fmt.Errorf("debit %s: %w", asset, res.Error)
	}
	if res.RowsAffected == 0 {
		return Balance{}, ErrInsufficientFunds
	}

	return balance, nil
}

func insertTransaction(tx *gorm.DB, record *Transaction) error {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "tx_hash"}},
		DoNothing: true,
	}).Create(record)
	if res.Error != nil {
		return fmt.Errorf("insert transaction: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrDuplicateTransaction
	}

	return nil
}
