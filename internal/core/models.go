package core

import (
	"time"

	"custodian/internal/repository"

	"github.com/shopspring/decimal"
)

// Claim is what a client asserts about a balance-affecting operation.
// PrincipalID and WalletID are filled in by the Custodian, never by clients.
type Claim struct {
	PrincipalID string
	WalletID    string
	Type        repository.TransactionType
	Asset       string
	ToAsset     string
	Network     string
	Amount      decimal.Decimal
	AmountOut   decimal.Decimal
	Fee         decimal.Decimal
	FromAddress string
	ToAddress   string
	Reference   string
}

// Settlement is either an OnChainSettlement or an OffChainSettlement.
type Settlement interface {
	claim() Claim
	bind(principalID, walletID string) Settlement
}

// OnChainSettlement is backed by a transaction the client already broadcast.
type OnChainSettlement struct {
	Claim
	TxHash string
}

// OffChainSettlement moves balances without chain evidence.
type OffChainSettlement struct {
	Claim
}

func (s OnChainSettlement) claim() Claim { return s.Claim }

func (s OnChainSettlement) bind(principalID, walletID string) Settlement {
	s.PrincipalID, s.WalletID = principalID, walletID
	return s
}

func (s OffChainSettlement) claim() Claim { return s.Claim }

func (s OffChainSettlement) bind(principalID, walletID string) Settlement {
	s.PrincipalID, s.WalletID = principalID, walletID
	return s
}

type MnemonicInfo struct {
	ID        string    `json:"id"`
	WalletID  string    `json:"walletId"`
	Network   string    `json:"network"`
	CreatedAt time.Time `json:"createdAt"`
}
