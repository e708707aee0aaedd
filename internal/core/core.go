package core

import (
	"context"
	"fmt"

	"custodian/internal/hdwallet"
	"custodian/internal/ledger"
	"custodian/internal/repository"

	"go.uber.org/zap"
)

// Custodian is the entry point for authenticated principals. It resolves the
// principal's default wallet and delegates to the key, ledger and settlement services.
type Custodian struct {
	logs    *zap.SugaredLogger
	wallets WalletRegistry
	keys    KeyService
	ledger  Ledger
	settler *Settler
}

// NewCustodian is a constructor function for the Custodian type.
func NewCustodian(logger *zap.SugaredLogger, wallets WalletRegistry, keys KeyService, ledger Ledger, settler *Settler) *Custodian {
	return &Custodian{
		logs:    logger,
		wallets: wallets,
		keys:    keys,
		ledger:  ledger,
		settler: settler,
	}
}

// InitMnemonic makes sure the principal has a mnemonic bound to its default wallet.
// It is idempotent: an existing mnemonic is returned unchanged.
func (c *Custodian) InitMnemonic(ctx context.Context, principalID, network string) (MnemonicInfo, error) {
	wallet, err := c.wallets.DefaultWallet(ctx, principalID)
	if err != nil {
		return MnemonicInfo{}, fmt.Errorf("resolve wallet: %w", err)
	}

	record, err := c.keys.GetOrCreateMnemonic(ctx, principalID, wallet.ID, network)
	if err != nil {
		return MnemonicInfo{}, err
	}

	return MnemonicInfo{
		ID:        record.ID,
		WalletID:  record.WalletID,
		Network:   record.Network,
		CreatedAt: record.CreatedAt,
	}, nil
}

// DeriveAddress derives the next deposit address for the principal.
func (c *Custodian) DeriveAddress(ctx context.Context, req hdwallet.DeriveRequest) (repository.DerivedAddress, error) {
	return c.keys.DeriveNextAddress(ctx, req)
}

// ExportKey reveals the private key behind one of the principal's addresses.
func (c *Custodian) ExportKey(ctx context.Context, req hdwallet.ExportRequest) (hdwallet.ExportedKey, error) {
	return c.keys.GetPrivateKeyForAddress(ctx, req)
}

// Settle binds the settlement to the principal's default wallet and applies it.
func (c *Custodian) Settle(ctx context.Context, principalID string, settlement Settlement) (ledger.SettlementResult, error) {
	if settlement == nil {
		return ledger.SettlementResult{}, fmt.Errorf("%w: empty settlement", ErrInvalidSettlement)
	}

	wallet, err := c.wallets.DefaultWallet(ctx, principalID)
	if err != nil {
		return ledger.SettlementResult{}, fmt.Errorf("resolve wallet: %w", err)
	}

	result, err := c.settler.Settle(ctx, settlement.bind(principalID, wallet.ID))
	if err != nil {
		c.logs.Warnw("settlement rejected",
			"principal_id", principalID,
			"wallet_id", wallet.ID,
			"error", err)
		return ledger.SettlementResult{}, err
	}

	return result, nil
}

// Balance returns the principal's balance of asset in the default wallet.
func (c *Custodian) Balance(ctx context.Context, principalID, asset string) (repository.Balance, error) {
	asset, err := hdwallet.NormalizeAsset(asset)
	if err != nil {
		return repository.Balance{}, err
	}

	wallet, err := c.wallets.DefaultWallet(ctx, principalID)
	if err != nil {
		return repository.Balance{}, fmt.Errorf("resolve wallet: %w", err)
	}

	return c.ledger.Balance(ctx, wallet.ID, asset)
}
