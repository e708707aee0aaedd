package hdwallet

import (
	"crypto/ecdsa"
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/tyler-smith/go-bip39"
)

const (
	// DerivationPath is m/44'/60'/0'/0/{index}.
	DerivationPath = "m/44'/60'/0'/0/%d"

	mnemonicEntropyBits = 128
)

var (
	ErrInvalidMnemonic    = errors.New("invalid mnemonic")
	ErrIndexOutOfRange    = errors.New("derivation index out of range")
	accountPathComponents = []uint32{
		hdkeychain.HardenedKeyStart + 44,
		hdkeychain.HardenedKeyStart + 60,
		hdkeychain.HardenedKeyStart + 0,
		0,
	}
)

// Account is a derived key pair. It lives in memory only.
type Account struct {
	Index      uint32
	Path       string
	Address    common.Address
	PrivateKey *ecdsa.PrivateKey
}

// NewMnemonic returns a fresh 12 word BIP-39 mnemonic.
func NewMnemonic() (string, error) {
	entropy, err := bip39.NewEntropy(mnemonicEntropyBits)
	if err != nil {
		return "", fmt.Errorf("generate entropy: %w", err)
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return "", fmt.Errorf("encode mnemonic: %w", err)
	}

	return mnemonic, nil
}

// DeriveAccount derives the key at m/44'/60'/0'/0/{index}.
func DeriveAccount(mnemonic string, index uint32) (Account, error) {
	if index >= hdkeychain.HardenedKeyStart {
		return Account{}, ErrIndexOutOfRange
	}
	if !bip39.IsMnemonicValid(mnemonic) {
		return Account{}, ErrInvalidMnemonic
	}

	seed := bip39.NewSeed(mnemonic, "")
	master, err := hdkeychain.NewMaster(seed, &chaincfg.MainNetParams)
	if err != nil {
		return Account{}, fmt.Errorf("create master key: %w", err)
	}
	defer master.Zero()

	key := master
	for _, child := range append(accountPathComponents, index) {
		next, err := key.Derive(child)
		if err != nil {
			return Account{}, fmt.Errorf("derive child %d: %w", child, err)
		}
		if key != master {
			key.Zero()
		}
		key = next
	}
	defer key.Zero()

	ecKey, err := key.ECPrivKey()
	if err != nil {
		return Account{}, fmt.Errorf("extract private key: %w", err)
	}

	privateKey, err := crypto.ToECDSA(ecKey.Serialize())
	if err != nil {
		return Account{}, fmt.Errorf("convert private key: %w", err)
	}

	return Account{
		Index:      index,
		Path:       fmt.Sprintf(DerivationPath, index),
		Address:    crypto.PubkeyToAddress(privateKey.PublicKey),
		PrivateKey: privateKey,
	}, nil
}
