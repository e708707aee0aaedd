package repository

import (
	"time"

	"custodian/internal/envelope"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeTopUp   TransactionType = "TOPUP"
	TypeSend    TransactionType = "SEND"
	TypeReceive TransactionType = "RECEIVE"
	TypeSwap    TransactionType = "SWAP"
)

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "PENDING"
	StatusCompleted TransactionStatus = "COMPLETED"
	StatusFailed    TransactionStatus = "FAILED"
)

// MnemonicRecord holds the encrypted seed phrase of one principal. NextIndex is
// the only source of the next derivation index and is never decremented.
type MnemonicRecord struct {
	ID                string            `gorm:"type:uuid;primaryKey"`
	PrincipalID       string            `gorm:"size:64;uniqueIndex;not null"`
	WalletID          string            `gorm:"size:24;not null"`
	Network           string            `gorm:"size:32;not null"`
	EncryptedMnemonic envelope.Envelope `gorm:"embedded;embeddedPrefix:mnemonic_"`
	NextIndex         uint32            `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type DerivedAddress struct {
	ID               string  `gorm:"type:uuid;primaryKey"`
	WalletID         string  `gorm:"size:24;not null;uniqueIndex:idx_derived_address"`
	Asset            string  `gorm:"size:16;not null;uniqueIndex:idx_derived_address"`
	Network          string  `gorm:"size:32;not null;uniqueIndex:idx_derived_address"`
	Address          string  `gorm:"size:42;not null;uniqueIndex:idx_derived_address"` // lowercase 0x + 40 hex
	PrincipalID      string  `gorm:"size:64;not null;index"`
	Label            *string `gorm:"size:64"`
	DerivationIndex  uint32  `gorm:"not null"`
	IsDefault        bool    `gorm:"not null"`
	MnemonicRecordID string  `gorm:"type:uuid;not null"`
	CreatedAt        time.Time
}

type Balance struct {
	WalletID  string          `gorm:"size:24;primaryKey"`
	Asset     string          `gorm:"size:16;primaryKey"`
	Available decimal.Decimal `gorm:"type:numeric(30,2);not null;check:available >= 0"`
	Locked    decimal.Decimal `gorm:"type:numeric(30,2);not null"`
	UpdatedAt time.Time
}

type Transaction struct {
	ID            string            `gorm:"type:uuid;primaryKey"`
	WalletID      string            `gorm:"size:24;not null;index"`
	Type          TransactionType   `gorm:"size:16;not null"`
	Status        TransactionStatus `gorm:"size:16;not null"`
	Asset         string            `gorm:"size:16;not null"`
	Network       string            `gorm:"size:32;not null"`
	Amount        decimal.Decimal   `gorm:"type:numeric(30,2);not null"`
	Fee           decimal.Decimal   `gorm:"type:numeric(30,2);not null"`
	FromAddress   *string           `gorm:"size:42"`
	ToAddress     *string           `gorm:"size:42"`
	Reference     *string           `gorm:"size:128"`
	TxHash        *string           `gorm:"size:66;uniqueIndex"` // null for off-chain records
	Confirmations uint64            `gorm:"not null"`
	ChainID       int64             `gorm:"not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type AuditLog struct {
	ID          string         `gorm:"type:uuid;primaryKey"`
	PrincipalID string         `gorm:"size:64;not null;index"`
	Action      string         `gorm:"size:64;not null;index"`
	EntityID    string         `gorm:"size:128"`
	Metadata    map[string]any `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
}

type Wallet struct {
	ID          string `gorm:"size:24;primaryKey"`
	PrincipalID string `gorm:"size:64;not null;index"`
	Name        string `gorm:"size:64;not null"`
	IsDefault   bool   `gorm:"not null"`
	CreatedAt   time.Time
}

// Leg is one signed balance movement applied by ApplyLegs. A negative delta debits.
type Leg struct {
	Asset string
	Delta decimal.Decimal
}
