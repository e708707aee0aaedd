package payload

import (
	"time"

	"custodian/internal/repository"
)

type AddressView struct {
	Address         string    `json:"address"`
	Asset           string    `json:"asset"`
	Network         string    `json:"network"`
	DerivationIndex uint32    `json:"derivationIndex"`
	Label           *string   `json:"label,omitempty"`
	IsDefault       bool      `json:"isDefault"`
	CreatedAt       time.Time `json:"createdAt"`
}

func NewAddressView(a repository.DerivedAddress) AddressView {
	return AddressView{
		Address:         a.Address,
		Asset:           a.Asset,
		Network:         a.Network,
		DerivationIndex: a.DerivationIndex,
		Label:           a.Label,
		IsDefault:       a.IsDefault,
		CreatedAt:       a.CreatedAt,
	}
}

type BalanceView struct {
	Asset     string `json:"asset"`
	Available string `json:"available"`
	Locked    string `json:"locked"`
}

func NewBalanceView(b repository.Balance) BalanceView {
	return BalanceView{
		Asset:     b.Asset,
		Available: b.Available.StringFixed(2),
		Locked:    b.Locked.StringFixed(2),
	}
}

type TransactionView struct {
	ID            string  `json:"id"`
	Type          string  `json:"type"`
	Status        string  `json:"status"`
	Asset         string  `json:"asset"`
	Network       string  `json:"network"`
	Amount        string  `json:"amount"`
	Fee           string  `json:"fee"`
	FromAddress   *string `json:"fromAddress,omitempty"`
	ToAddress     *string `json:"toAddress,omitempty"`
	Reference     *string `json:"reference,omitempty"`
	TxHash        *string `json:"txHash,omitempty"`
	Confirmations uint64  `json:"confirmations"`
	ChainID       int64   `json:"chainId,omitempty"`
}

type SettlementView struct {
	Transaction TransactionView `json:"transaction"`
	Balances    []BalanceView   `json:"balances"`
}

func NewSettlementView(tx repository.Transaction, balances []repository.Balance) SettlementView {
	view := SettlementView{
		Transaction: TransactionView{
			ID:            tx.ID,
			Type:          string(tx.Type),
			Status:        string(tx.Status),
			Asset:         tx.Asset,
			Network:       tx.Network,
			Amount:        tx.Amount.StringFixed(2),
			Fee:           tx.Fee.StringFixed(2),
			FromAddress:   tx.FromAddress,
			ToAddress:     tx.ToAddress,
			Reference:     tx.Reference,
			TxHash:        tx.TxHash,
			Confirmations: tx.Confirmations,
			ChainID:       tx.ChainID,
		},
		Balances: make([]BalanceView, 0, len(balances)),
	}
	for _, b := range balances {
		view.Balances = append(view.Balances, NewBalanceView(b))
	}
	return view
}
