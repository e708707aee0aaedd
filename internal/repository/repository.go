package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"custodian/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrMnemonicNotFound     error = errors.New("mnemonic not found")
	ErrAddressNotFound      error = errors.New("derived address not found")
	ErrInsufficientFunds    error = errors.New("insufficient funds")
	ErrDuplicateTransaction error = errors.New("transaction already recorded")
)

// partial unique indexes gorm tags cannot express
var constraints = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_derived_address_default ON derived_addresses (wallet_id, asset, network) WHERE is_default`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_wallet_default ON wallets (principal_id) WHERE is_default`,
}

type Repository struct {
	db *db.PostgresDB
}

func NewRepository(database *db.PostgresDB) *Repository {
	return &Repository{
		db: database,
	}
}

func (r *Repository) Migrate(ctx context.Context) error {
	err := r.db.MigrateTable(
		&MnemonicRecord{},
		&DerivedAddress{},
		&Balance{},
		&Transaction{},
		&AuditLog{},
		&Wallet{},
	)
	if err != nil {
		return fmt.Errorf("migrate table(s): %w", err)
	}

	for _, statement := range constraints {
		if err := r.db.Exec(ctx, statement); err != nil {
			return fmt.Errorf("create constraint: %w", err)
		}
	}

	return nil
}

// NewWalletID returns a random 24 character lowercase hex identifier.
func NewWalletID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:24]
}

func (r *Repository) WalletExists(ctx context.Context, walletID string) (bool, error) {
	exists, err := r.db.Exists(ctx, &Wallet{}, "id", walletID)
	if err != nil {
		return false, fmt.Errorf("check wallet: %w", err)
	}
	return exists, nil
}

// DefaultWallet returns the principal's default wallet, creating it on first use.
func (r *Repository) DefaultWallet(ctx context.Context, principalID string) (Wallet, error) {
	wallet, err := r.findDefaultWallet(ctx, principalID)
	if err == nil {
		return wallet, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Wallet{}, fmt.Errorf("get default wallet: %w", err)
	}

	wallet = Wallet{
		ID:          NewWalletID(),
		PrincipalID: principalID,
		Name:        "Main",
		IsDefault:   true,
	}
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&wallet)
	if res.Error != nil {
		return Wallet{}, fmt.Errorf("create default wallet: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		// created concurrently
		wallet, err = r.findDefaultWallet(ctx, principalID)
		if err != nil {
			return Wallet{}, fmt.Errorf("get default wallet: %w", err)
		}
	}

	return wallet, nil
}

func (r *Repository) findDefaultWallet(ctx context.Context, principalID string) (Wallet, error) {
	var wallet Wallet
	err := r.db.WithContext(ctx).Where("principal_id = ? AND is_default", principalID).First(&wallet).Error
	return wallet, err
}

func (r *Repository) SaveAuditLog(ctx context.Context, entry AuditLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if err := r.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}

	return nil
}
