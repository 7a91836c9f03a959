package domain

import (
	"context"
	"time"
)

type TransactionType string

const (
	TransactionSale       TransactionType = "sale"
	TransactionWithdrawal TransactionType = "withdrawal"
	TransactionRefund     TransactionType = "refund"
)

type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "pending"
	TransactionCompleted TransactionStatus = "completed"
	TransactionFailed    TransactionStatus = "failed"
)

type BankDetails struct {
	AccountHolder string
	AccountNumber string
	BankName      string
	RoutingNumber string
}

// WalletTransaction is one row of the append-only per-user ledger.
// Balance is derived by folding the ledger, never stored.
type WalletTransaction struct {
	ID          string
	UserID      string
	Type        TransactionType
	Amount      float64
	Status      TransactionStatus
	BankDetails *BankDetails
	Reference   string
	CreatedAt   time.Time
}

// Balance fold: completed sales add, withdrawals and refunds subtract
// unless failed. Pending withdrawals reserve funds on purpose.
func (t *WalletTransaction) BalanceDelta() float64 {
	if t.Status == TransactionFailed {
		return 0
	}
	switch t.Type {
	case TransactionSale:
		if t.Status == TransactionCompleted {
			return t.Amount
		}
		return 0
	case TransactionWithdrawal, TransactionRefund:
		return -t.Amount
	}
	return 0
}

type WalletRepository interface {
	CreateTransaction(ctx context.Context, tx *WalletTransaction) error
	GetTransactionByID(ctx context.Context, id string) (*WalletTransaction, error)
	GetTransactionsByUserID(ctx context.Context, userID string, page, limit int64) ([]*WalletTransaction, int64, error)
	UpdateTransactionStatus(ctx context.Context, id string, status TransactionStatus) error
	SumBalance(ctx context.Context, userID string) (float64, error)
	SumCompletedSales(ctx context.Context, userID string) (float64, error)
	FindPendingWithdrawalsBefore(ctx context.Context, cutoff time.Time) ([]*WalletTransaction, error)

	// WithdrawWithLock runs fn inside one DB transaction with the user's
	// ledger rows locked, so a concurrent withdrawal cannot pass the same
	// balance check.
	WithdrawWithLock(ctx context.Context, userID string, fn func(balance float64) (*WalletTransaction, error)) (*WalletTransaction, error)
}
