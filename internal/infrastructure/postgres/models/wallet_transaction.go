package models

import (
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
)

type WalletTransactionModel struct {
	ID     string                   `gorm:"primaryKey;type:uuid"`
	UserID string                   `gorm:"type:uuid;index:idx_user_created"`
	Type   domain.TransactionType   `gorm:"index"`
	Amount float64
	Status domain.TransactionStatus `gorm:"index:idx_status_created"`

	// Withdrawal payout target, empty for sales and refunds.
	BankAccountHolder string
	BankAccountNumber string
	BankName          string
	BankRoutingNumber string

	Reference string
	CreatedAt time.Time `gorm:"index:idx_user_created;index:idx_status_created"`
}
