package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"custodian/internal/db"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func (r *Repository) GetMnemonic(ctx context.Context, principalID string) (MnemonicRecord, error) {
	var record MnemonicRecord

	err := r.db.GetOneBy(ctx, "principal_id", principalID, &record)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return MnemonicRecord{}, ErrMnemonicNotFound
		}
		return MnemonicRecord{}, fmt.Errorf("get mnemonic by principal: %w", err)
	}

	return record, nil
}

// GetMnemonicByID loads a mnemonic only if it belongs to principalID.
func (r *Repository) GetMnemonicByID(ctx context.Context, id, principalID string) (MnemonicRecord, error) {
	var record MnemonicRecord

	err := r.db.WithContext(ctx).Where("id = ? AND principal_id = ?", id, principalID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return MnemonicRecord{}, ErrMnemonicNotFound
		}
		return MnemonicRecord{}, fmt.Errorf("get mnemonic by id: %w", err)
	}

	return record, nil
}

// InsertMnemonicIfAbsent stores record unless the principal already owns one, in
// which case the stored record is returned and created is false.
func (r *Repository) InsertMnemonicIfAbsent(ctx context.Context, record MnemonicRecord) (MnemonicRecord, bool, error) {
	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "principal_id"}},
			DoNothing: true,
		}).
		Create(&record)
	if res.Error != nil {
		return MnemonicRecord{}, false, fmt.Errorf("insert mnemonic: %w", res.Error)
	}

	if res.RowsAffected == 0 {
		existing, err := r.GetMnemonic(ctx, record.PrincipalID)
		if err != nil {
			return MnemonicRecord{}, false, fmt.Errorf("load existing mnemonic: %w", err)
		}
		return existing, false, nil
	}

	return record, true, nil
}

// ReserveIndex atomically increments next_index and returns the value it had before.
func (r *Repository) ReserveIndex(ctx context.Context, mnemonicID string) (uint32, error) {
	var index uint32

	err := r.db.WithContext(ctx).
		Raw(`UPDATE mnemonic_records SET next_index = next_index + 1, updated_at = ? WHERE id = ? RETURNING next_index - 1`,
			time.Now().UTC(), mnemonicID).
		Row().
		Scan(&index)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrMnemonicNotFound
		}
		return 0, fmt.Errorf("reserve derivation index: %w", err)
	}

	return index, nil
}

// SaveDerivedAddress persists address, or returns the stored row when the same
// (wallet, asset, network, address) was saved before. The first address of a
// (wallet, asset, network) becomes default; setDefault demotes the others.
func (r *Repository) SaveDerivedAddress(ctx context.Context, address DerivedAddress, setDefault bool) (DerivedAddress, error) {
	var saved DerivedAddress

	err := r.db.Atomic(ctx, func(tx *gorm.DB) error {
		// one writer per mnemonic for the default flag
		var owner MnemonicRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", address.MnemonicRecordID).
			Take(&owner).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMnemonicNotFound
			}
			return fmt.Errorf("lock mnemonic: %w", err)
		}

		var existing []DerivedAddress
		err = tx.Where("wallet_id = ? AND asset = ? AND network = ? AND address = ?",
			address.WalletID, address.Asset, address.Network, address.Address).
			Limit(1).
			Find(&existing).Error
		if err != nil {
			return fmt.Errorf("find derived address: %w", err)
		}
		if len(existing) > 0 {
			saved = existing[0]
			return nil
		}

		var defaults int64
		err = tx.Model(&DerivedAddress{}).
			Where("wallet_id = ? AND asset = ? AND network = ? AND is_default", address.WalletID, address.Asset, address.Network).
			Count(&defaults).Error
		if err != nil {
			return fmt.Errorf("count default addresses: %w", err)
		}

		address.IsDefault = setDefault || defaults == 0
		if address.IsDefault && defaults > 0 {
			err = tx.Model(&DerivedAddress{}).
				Where("wallet_id = ? AND asset = ? AND network = ?", address.WalletID, address.Asset, address.Network).
				Update("is_default", false).Error
			if err != nil {
				return fmt.Errorf("demote default address: %w", err)
			}
		}

		if address.ID == "" {
			address.ID = uuid.NewString()
		}
		if err := tx.Create(&address).Error; err != nil {
			return fmt.Errorf("insert derived address: %w", err)
		}

		saved = address
		return nil
	})
	if err != nil {
		return DerivedAddress{}, err
	}

	return saved, nil
}

// FindDerivedAddress looks an address up within the principal's own addresses only.
func (r *Repository) FindDerivedAddress(ctx context.Context, principalID, address string) (DerivedAddress, error) {
	var found DerivedAddress

	err := r.db.WithContext(ctx).Where("principal_id = ? AND address = ?", principalID, address).First(&found).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return DerivedAddress{}, ErrAddressNotFound
		}
		return DerivedAddress{}, fmt.Errorf("find derived address: %w", err)
	}

	return found, nil
}
