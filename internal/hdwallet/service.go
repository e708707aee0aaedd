package hdwallet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"custodian/internal/audit"
	"custodian/internal/repository"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

const (
	DefaultNetwork = "POLYGON_AMOY"

	defaultExportReason = "export"
)

var (
	ErrNoMnemonic           error = errors.New("no mnemonic for principal")
	ErrRateLimited          error = errors.New("too many key export attempts, retry later")
	ErrConfirmationRequired error = errors.New("key export requires explicit confirmation")
	ErrAddressNotFound      error = errors.New("address not found for principal")
	ErrDerivationMismatch   error = errors.New("re-derived address does not match stored address")
	ErrUnsupported          error = errors.New("unsupported asset or network")
)

var (
	supportedAssets = map[string]struct{}{
		"USDT": {},
		"USDC": {},
		"DAI":  {},
	}
	networkAliases = map[string]string{
		"POLYGON_AMOY": "POLYGON_AMOY",
		"POLYGON":      "POLYGON_AMOY",
	}
)

// NormalizeAsset uppercases asset and checks it is supported.
func NormalizeAsset(asset string) (string, error) {
	asset = strings.ToUpper(strings.TrimSpace(asset))
	if _, ok := supportedAssets[asset]; !ok {
		return "", fmt.Errorf("%w: asset %q", ErrUnsupported, asset)
	}
	return asset, nil
}

// NormalizeNetwork resolves aliases; an empty network means DefaultNetwork.
func NormalizeNetwork(network string) (string, error) {
	network = strings.ToUpper(strings.TrimSpace(network))
	if network == "" {
		return DefaultNetwork, nil
	}
	canonical, ok := networkAliases[network]
	if !ok {
		return "", fmt.Errorf("%w: network %q", ErrUnsupported, network)
	}
	return canonical, nil
}

type DeriveRequest struct {
	PrincipalID string
	Asset       string
	Network     string
	Label       *string
	SetDefault  bool
}

type ExportRequest struct {
	PrincipalID string
	Address     string
	Confirmed   bool
	Reason      string
	IP          string
	UserAgent   string
}

type ExportedKey struct {
	Address    string `json:"address"`
	PrivateKey string `json:"privateKey"`
	Index      uint32 `json:"derivationIndex"`
}

// KeyService owns every path that touches mnemonic plaintext.
type KeyService struct {
	logs    *zap.SugaredLogger
	store   KeyStore
	sealer  Sealer
	limiter Limiter
	auditor Auditor
}

func NewKeyService(logger *zap.SugaredLogger, store KeyStore, sealer Sealer, limiter Limiter, auditor Auditor) *KeyService {
	return &KeyService{
		logs:    logger,
		store:   store,
		sealer:  sealer,
		limiter: limiter,
		auditor: auditor,
	}
}

// GetOrCreateMnemonic returns the principal's mnemonic record, generating and
// sealing a new mnemonic on first use. Concurrent first calls converge on one record.
func (s *KeyService) GetOrCreateMnemonic(ctx context.Context, principalID, walletID, network string) (repository.MnemonicRecord, error) {
	record, err := s.store.GetMnemonic(ctx, principalID)
	if err == nil {
		return record, nil
	}
	if !errors.Is(err, repository.ErrMnemonicNotFound) {
		return repository.MnemonicRecord{}, fmt.Errorf("get mnemonic: %w", err)
	}

	network, err = NormalizeNetwork(network)
	if err != nil {
		return repository.MnemonicRecord{}, err
	}

	mnemonic, err := NewMnemonic()
	if err != nil {
		return repository.MnemonicRecord{}, fmt.Errorf("new mnemonic: %w", err)
	}

	sealed, err := s.sealer.Seal(mnemonic)
	if err != nil {
		return repository.MnemonicRecord{}, fmt.Errorf("seal mnemonic: %w", err)
	}

	record, created, err := s.store.InsertMnemonicIfAbsent(ctx, repository.MnemonicRecord{
		PrincipalID:       principalID,
		WalletID:          walletID,
		Network:           network,
		EncryptedMnemonic: sealed,
	})
	if err != nil {
		return repository.MnemonicRecord{}, fmt.Errorf("store mnemonic: %w", err)
	}

	if created {
		s.logs.Infow("mnemonic created",
			"principal_id", principalID,
			"wallet_id", walletID,
			"mnemonic_id", record.ID)
		s.auditor.Record(ctx, audit.Entry{
			PrincipalID: principalID,
			Action:      audit.ActionMnemonicCreated,
			EntityID:    record.ID,
			Metadata: map[string]any{
				"walletId": walletID,
				"network":  network,
			},
		})
	}

	return record, nil
}

// DeriveNextAddress spends the next derivation index of the principal's mnemonic.
func (s *KeyService) DeriveNextAddress(ctx context.Context, req DeriveRequest) (repository.DerivedAddress, error) {
	asset, err := NormalizeAsset(req.Asset)
	if err != nil {
		return repository.DerivedAddress{}, err
	}
	network, err := NormalizeNetwork(req.Network)
	if err != nil {
		return repository.DerivedAddress{}, err
	}

	record, err := s.store.GetMnemonic(ctx, req.PrincipalID)
	if err != nil {
		if errors.Is(err, repository.ErrMnemonicNotFound) {
			return repository.DerivedAddress{}, ErrNoMnemonic
		}
		return repository.DerivedAddress{}, fmt.Errorf("get mnemonic: %w", err)
	}

	// opened before reserving so an unreadable envelope never burns an index
	mnemonic, err := s.sealer.Open(record.EncryptedMnemonic)
	if err != nil {
		return repository.DerivedAddress{}, fmt.Errorf("open mnemonic: %w", err)
	}

	index, err := s.store.ReserveIndex(ctx, record.ID)
	if err != nil {
		return repository.DerivedAddress{}, fmt.Errorf("reserve index: %w", err)
	}

	account, err := DeriveAccount(mnemonic, index)
	if err != nil {
		return repository.DerivedAddress{}, fmt.Errorf("derive account %d: %w", index, err)
	}

	saved, err := s.store.SaveDerivedAddress(ctx, repository.DerivedAddress{
		WalletID:         record.WalletID,
		Asset:            asset,
		Network:          network,
		Address:          strings.ToLower(account.Address.Hex()),
		PrincipalID:      req.PrincipalID,
		Label:            req.Label,
		DerivationIndex:  index,
		MnemonicRecordID: record.ID,
	}, req.SetDefault)
	if err != nil {
		return repository.DerivedAddress{}, fmt.Errorf("save derived address: %w", err)
	}

	s.logs.Infow("address derived",
		"principal_id", req.PrincipalID,
		"wallet_id", saved.WalletID,
		"asset", asset,
		"network", network,
		"address", saved.Address,
		"index", saved.DerivationIndex)
	s.auditor.Record(ctx, audit.Entry{
		PrincipalID: req.PrincipalID,
		Action:      audit.ActionAddressDerived,
		EntityID:    saved.Address,
		Metadata: map[string]any{
			"walletId":  saved.WalletID,
			"asset":     asset,
			"network":   network,
			"index":     saved.DerivationIndex,
			"isDefault": saved.IsDefault,
		},
	})

	return saved, nil
}

// GetPrivateKeyForAddress re-derives the key behind one of the principal's
// addresses. Every attempt, granted or denied, is audited.
func (s *KeyService) GetPrivateKeyForAddress(ctx context.Context, req ExportRequest) (ExportedKey, error) {
	address := strings.ToLower(strings.TrimSpace(req.Address))
	reason := req.Reason
	if reason == "" {
		reason = defaultExportReason
	}
	metadata := map[string]any{
		"address":   address,
		"reason":    reason,
		"ip":        req.IP,
		"userAgent": req.UserAgent,
	}

	if !req.Confirmed {
		s.deny(ctx, req.PrincipalID, address, metadata, "confirmation_required")
		return ExportedKey{}, ErrConfirmationRequired
	}

	allowed, err := s.limiter.Allow(ctx, req.PrincipalID)
	if err != nil {
		s.deny(ctx, req.PrincipalID, address, metadata, "limiter_unavailable")
		return ExportedKey{}, fmt.Errorf("check export rate: %w", err)
	}
	if !allowed {
		s.logs.Warnw("key export rate limited", "principal_id", req.PrincipalID, "address", address)
		s.auditor.Record(ctx, audit.Entry{
			PrincipalID: req.PrincipalID,
			Action:      audit.ActionKeyExportRateLimited,
			EntityID:    address,
			Metadata:    metadata,
		})
		return ExportedKey{}, ErrRateLimited
	}

	derived, err := s.store.FindDerivedAddress(ctx, req.PrincipalID, address)
	if err != nil {
		s.deny(ctx, req.PrincipalID, address, metadata, "address_not_found")
		if errors.Is(err, repository.ErrAddressNotFound) {
			return ExportedKey{}, ErrAddressNotFound
		}
		return ExportedKey{}, fmt.Errorf("find address: %w", err)
	}

	record, err := s.store.GetMnemonicByID(ctx, derived.MnemonicRecordID, req.PrincipalID)
	if err != nil {
		s.deny(ctx, req.PrincipalID, address, metadata, "mnemonic_not_found")
		if errors.Is(err, repository.ErrMnemonicNotFound) {
			return ExportedKey{}, ErrNoMnemonic
		}
		return ExportedKey{}, fmt.Errorf("get mnemonic: %w", err)
	}

	mnemonic, err := s.sealer.Open(record.EncryptedMnemonic)
	if err != nil {
		s.deny(ctx, req.PrincipalID, address, metadata, "decrypt_failed")
		return ExportedKey{}, fmt.Errorf("open mnemonic: %w", err)
	}

	account, err := DeriveAccount(mnemonic, derived.DerivationIndex)
	if err != nil {
		s.deny(ctx, req.PrincipalID, address, metadata, "derivation_failed")
		return ExportedKey{}, fmt.Errorf("derive account %d: %w", derived.DerivationIndex, err)
	}

	if strings.ToLower(account.Address.Hex()) != derived.Address {
		s.logs.Errorw("derived address mismatch",
			"principal_id", req.PrincipalID,
			"address", derived.Address,
			"index", derived.DerivationIndex)
		s.deny(ctx, req.PrincipalID, address, metadata, "derivation_mismatch")
		return ExportedKey{}, ErrDerivationMismatch
	}

	metadata["index"] = derived.DerivationIndex
	s.logs.Infow("private key exported",
		"principal_id", req.PrincipalID,
		"address", derived.Address,
		"reason", reason)
	s.auditor.Record(ctx, audit.Entry{
		PrincipalID: req.PrincipalID,
		Action:      audit.ActionKeyExported,
		EntityID:    derived.Address,
		Metadata:    metadata,
	})

	return ExportedKey{
		Address:    derived.Address,
		PrivateKey: hexutil.Encode(crypto.FromECDSA(account.PrivateKey)),
		Index:      derived.DerivationIndex,
	}, nil
}

func (s *KeyService) deny(ctx context.Context, principalID, address string, metadata map[string]any, denial string) {
	entry := make(map[string]any, len(metadata)+1)
	for k, v := range metadata {
		entry[k] = v
	}
	entry["denial"] = denial

	s.logs.Warnw("key export denied",
		"principal_id", principalID,
		"address", address,
		"denial", denial)
	s.auditor.Record(ctx, audit.Entry{
		PrincipalID: principalID,
		Action:      audit.ActionKeyExportDenied,
		EntityID:    address,
		Metadata:    entry,
	})
}
