package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/metrics"
	walletdto "github.com/metalaloud/royalty-service/internal/usecase/dto/wallet"
)

type WalletUsecase interface {
	GetBalance(ctx context.Context, userID string) (float64, error)
	RequestWithdrawal(ctx context.Context, input *walletdto.RequestWithdrawalInput) (*domain.WalletTransaction, error)
	RecordSale(ctx context.Context, input *walletdto.RecordSaleInput) (*domain.WalletTransaction, error)
	RecordRefund(ctx context.Context, userID string, amount float64, reference string) (*domain.WalletTransaction, error)
	CompleteWithdrawal(ctx context.Context, txID string) error
	FailWithdrawal(ctx context.Context, txID string) error
	ListTransactions(ctx context.Context, input *walletdto.ListTransactionsInput) (*walletdto.ListTransactionsOutput, error)
	ExpirePendingWithdrawals(ctx context.Context, ttl time.Duration) error
}

type DefaultWalletUsecase struct {
	walletRepo domain.WalletRepository
	metrics    *metrics.RoyaltyMetrics
}

func NewDefaultWalletUsecase(walletRepo domain.WalletRepository, royaltyMetrics *metrics.RoyaltyMetrics) *DefaultWalletUsecase {
	return &DefaultWalletUsecase{
		walletRepo: walletRepo,
		metrics:    royaltyMetrics,
	}
}

func (uc *DefaultWalletUsecase) GetBalance(ctx context.Context, userID string) (float64, error) {
	balance, err := uc.walletRepo.SumBalance(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to fold ledger for user %s: %w", userID, err)
	}
	return RoundCurrency(balance), nil
}

// RequestWithdrawal re-checks the balance and appends the pending
// withdrawal under one row lock, so two concurrent requests against the
// same wallet cannot both pass the check.
func (uc *DefaultWalletUsecase) RequestWithdrawal(ctx context.Context, input *walletdto.RequestWithdrawalInput) (*domain.WalletTransaction, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("withdrawal amount must be positive, got %f", input.Amount)
	}

	tx, err := uc.walletRepo.WithdrawWithLock(ctx, input.UserID, func(balance float64) (*domain.WalletTransaction, error) {
		if input.Amount > RoundCurrency(balance) {
			return nil, fmt.Errorf("%w: requested %.2f, available %.2f", domain.ErrInsufficientFunds, input.Amount, balance)
		}
		bankDetails := input.BankDetails
		return &domain.WalletTransaction{
			ID:          uuid.New().String(),
			UserID:      input.UserID,
			Type:        domain.TransactionWithdrawal,
			Amount:      RoundCurrency(input.Amount),
			Status:      domain.TransactionPending,
			BankDetails: &bankDetails,
			CreatedAt:   time.Now(),
		}, nil
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.RecordWithdrawalRequested(input.UserID, tx.Amount)
	slog.Info("withdrawal requested", "user_id", input.UserID, "tx_id", tx.ID, "amount", tx.Amount)
	return tx, nil
}

// RecordSale appends a completed sale for the net of the platform fee.
func (uc *DefaultWalletUsecase) RecordSale(ctx context.Context, input *walletdto.RecordSaleInput) (*domain.WalletTransaction, error) {
	if input.Commission > input.GrossAmount {
		return nil, fmt.Errorf("commission %f exceeds gross amount %f", input.Commission, input.GrossAmount)
	}

	tx := &domain.WalletTransaction{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Type:      domain.TransactionSale,
		Amount:    RoundCurrency(input.GrossAmount - input.Commission),
		Status:    domain.TransactionCompleted,
		Reference: input.Reference,
		CreatedAt: time.Now(),
	}
	if err := uc.walletRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record sale: %w", err)
	}

	uc.metrics.RecordSale(input.UserID, tx.Amount, input.Commission)
	return tx, nil
}

func (uc *DefaultWalletUsecase) RecordRefund(ctx context.Context, userID string, amount float64, reference string) (*domain.WalletTransaction, error) {
	tx := &domain.WalletTransaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      domain.TransactionRefund,
		Amount:    RoundCurrency(amount),
		Status:    domain.TransactionCompleted,
		Reference: reference,
		CreatedAt: time.Now(),
	}
	if err := uc.walletRepo.CreateTransaction(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to record refund: %w", err)
	}
	return tx, nil
}

func (uc *DefaultWalletUsecase) CompleteWithdrawal(ctx context.Context, txID string) error {
	return uc.transitionWithdrawal(ctx, txID, domain.TransactionCompleted)
}

// FailWithdrawal releases reserved funds: failed rows fall out of the
// balance fold.
func (uc *DefaultWalletUsecase) FailWithdrawal(ctx context.Context, txID string) error {
	return uc.transitionWithdrawal(ctx, txID, domain.TransactionFailed)
}

func (uc *DefaultWalletUsecase) transitionWithdrawal(ctx context.Context, txID string, status domain.TransactionStatus) error {
	tx, err := uc.walletRepo.GetTransactionByID(ctx, txID)
	if err != nil {
		return err
	}
	if tx.Type != domain.TransactionWithdrawal {
		return fmt.Errorf("transaction %s is not a withdrawal", txID)
	}
	if tx.Status != domain.TransactionPending {
		return fmt.Errorf("withdrawal %s is already %s", txID, tx.Status)
	}
	if err := uc.walletRepo.UpdateTransactionStatus(ctx, txID, status); err != nil {
		return err
	}
	slog.Info("withdrawal transitioned", "tx_id", txID, "status", status)
	return nil
}

func (uc *DefaultWalletUsecase) ListTransactions(ctx context.Context, input *walletdto.ListTransactionsInput) (*walletdto.ListTransactionsOutput, error) {
	page := input.Page
	if page < 1 {
		page = 1
	}
	limit := input.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	txs, total, err := uc.walletRepo.GetTransactionsByUserID(ctx, input.UserID, page, limit)
	if err != nil {
		return nil, err
	}
	return &walletdto.ListTransactionsOutput{Transactions: txs, Total: total}, nil
}

// ExpirePendingWithdrawals fails withdrawals that sat pending longer
// than the TTL, so a dead payout side cannot reserve funds forever.
func (uc *DefaultWalletUsecase) ExpirePendingWithdrawals(ctx context.Context, ttl time.Duration) error {
	cutoff := time.Now().Add(-ttl)
	stale, err := uc.walletRepo.FindPendingWithdrawalsBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	for _, tx := range stale {
		if err := uc.walletRepo.UpdateTransactionStatus(ctx, tx.ID, domain.TransactionFailed); err != nil {
			slog.Error("failed to expire withdrawal", "tx_id", tx.ID, "error", err.Error())
			continue
		}
		slog.Info("pending withdrawal expired", "tx_id", tx.ID, "user_id", tx.UserID)
	}
	return nil
}
