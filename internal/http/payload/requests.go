package payload

import (
	"strings"

	"custodian/internal/core"
	"custodian/internal/hdwallet"
	"custodian/internal/repository"

	"github.com/jellydator/validation"
	"github.com/shopspring/decimal"
)

type MnemonicRequest struct {
	Network string `json:"network"`
}

func (m MnemonicRequest) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Network, validation.Length(0, 32)),
	)
}

type DeriveAddressRequest struct {
	Asset      string  `json:"asset"`
	Network    string  `json:"network"`
	Label      *string `json:"label"`
	SetDefault bool    `json:"setDefault"`
}

func (d DeriveAddressRequest) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Asset, validation.Required, validation.Length(1, 16)),
		validation.Field(&d.Network, validation.Length(0, 32)),
		validation.Field(&d.Label, validation.NilOrNotEmpty, validation.Length(1, 64)),
	)
}

func (d DeriveAddressRequest) ToDeriveRequest(principalID string) hdwallet.DeriveRequest {
	return hdwallet.DeriveRequest{
		PrincipalID: principalID,
		Asset:       d.Asset,
		Network:     d.Network,
		Label:       d.Label,
		SetDefault:  d.SetDefault,
	}
}

type ExportKeyRequest struct {
	Address string `json:"address"`
	Reason  string `json:"reason"`
}

func (e ExportKeyRequest) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Address, validation.Required, validation.Match(addressPattern)),
		validation.Field(&e.Reason, validation.Length(0, 256)),
	)
}

type SettlementRequest struct {
	Type        string          `json:"type"`
	Asset       string          `json:"asset"`
	ToAsset     string          `json:"toAsset"`
	Network     string          `json:"network"`
	Amount      decimal.Decimal `json:"amount"`
	AmountOut   decimal.Decimal `json:"amountOut"`
	Fee         decimal.Decimal `json:"fee"`
	FromAddress string          `json:"fromAddress"`
	ToAddress   string          `json:"toAddress"`
	Reference   string          `json:"reference"`
	TxHash      string          `json:"txHash"`
}

func (s SettlementRequest) Validate() error {
	kind := repository.TransactionType(strings.ToUpper(strings.TrimSpace(s.Type)))
	return validation.ValidateStruct(&s,
		validation.Field(&s.Type, validation.Required, validation.By(func(any) error {
			return validation.Validate(kind, validation.In(
				repository.TypeTopUp, repository.TypeSend, repository.TypeReceive, repository.TypeSwap))
		})),
		validation.Field(&s.Asset, validation.Required, validation.Length(1, 16)),
		validation.Field(&s.ToAsset, validation.When(kind == repository.TypeSwap, validation.Required)),
		validation.Field(&s.Network, validation.Length(0, 32)),
		validation.Field(&s.Amount, positive),
		validation.Field(&s.AmountOut, notNegative),
		validation.Field(&s.Fee, notNegative),
		validation.Field(&s.FromAddress, validation.Match(addressPattern)),
		validation.Field(&s.ToAddress, validation.Match(addressPattern)),
		validation.Field(&s.Reference, validation.Length(0, 128)),
		validation.Field(&s.TxHash, validation.Match(txHashPattern)),
	)
}

// ToSettlement picks the on-chain variant whenever a tx hash is present.
func (s SettlementRequest) ToSettlement() core.Settlement {
	claim := core.Claim{
		Type:        repository.TransactionType(s.Type),
		Asset:       s.Asset,
		ToAsset:     s.ToAsset,
		Network:     s.Network,
		Amount:      s.Amount,
		AmountOut:   s.AmountOut,
		Fee:         s.Fee,
		FromAddress: s.FromAddress,
		ToAddress:   s.ToAddress,
		Reference:   s.Reference,
	}

	if s.TxHash != "" {
		return core.OnChainSettlement{Claim: claim, TxHash: s.TxHash}
	}
	return core.OffChainSettlement{Claim: claim}
}
