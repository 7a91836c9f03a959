package repository

import (
	"context"
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/mappers"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultWalletRepository struct {
	DB *gorm.DB
}

func NewDefaultWalletRepository(db *gorm.DB) *DefaultWalletRepository {
	return &DefaultWalletRepository{DB: db}
}

func (r *DefaultWalletRepository) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMWalletTransaction(tx)).Error
}

func (r *DefaultWalletRepository) GetTransactionByID(ctx context.Context, id string) (*domain.WalletTransaction, error) {
	var model models.WalletTransactionModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainWalletTransaction(&model), nil
}

func (r *DefaultWalletRepository) GetTransactionsByUserID(ctx context.Context, userID string, page, limit int64) ([]*domain.WalletTransaction, int64, error) {
	var txModels []models.WalletTransactionModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).
		Model(&models.WalletTransactionModel{}).
		Where("user_id = ?", userID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&txModels).Error
	if err != nil {
		return nil, 0, err
	}

	txs := make([]*domain.WalletTransaction, len(txModels))
	for i, model := range txModels {
		txs[i] = mappers.ToDomainWalletTransaction(&model)
	}
	return txs, total, nil
}

func (r *DefaultWalletRepository) UpdateTransactionStatus(ctx context.Context, id string, status domain.TransactionStatus) error {
	return r.DB.WithContext(ctx).
		Model(&models.WalletTransactionModel{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// SumBalance folds the ledger in SQL: completed sales add, withdrawals
// and refunds subtract unless failed.
func (r *DefaultWalletRepository) SumBalance(ctx context.Context, userID string) (float64, error) {
	return r.sumBalance(r.DB.WithContext(ctx), userID)
}

func (r *DefaultWalletRepository) sumBalance(db *gorm.DB, userID string) (float64, error) {
	var balance float64
	err := db.
		Model(&models.WalletTransactionModel{}).
		Select(`COALESCE(SUM(CASE
			WHEN type = ? AND status = ? THEN amount
			WHEN type IN ? AND status IN ? THEN -amount
			ELSE 0 END), 0)`,
			domain.TransactionSale, domain.TransactionCompleted,
			[]domain.TransactionType{domain.TransactionWithdrawal, domain.TransactionRefund},
			[]domain.TransactionStatus{domain.TransactionPending, domain.TransactionCompleted}).
		Where("user_id = ?", userID).
		Scan(&balance).Error
	return balance, err
}

func (r *DefaultWalletRepository) SumCompletedSales(ctx context.Context, userID string) (float64, error) {
	var total float64
	err := r.DB.WithContext(ctx).
		Model(&models.WalletTransactionModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND type = ? AND status = ?",
			userID, domain.TransactionSale, domain.TransactionCompleted).
		Scan(&total).Error
	return total, err
}

func (r *DefaultWalletRepository) FindPendingWithdrawalsBefore(ctx context.Context, cutoff time.Time) ([]*domain.WalletTransaction, error) {
	var txModels []models.WalletTransactionModel
	err := r.DB.WithContext(ctx).
		Where("type = ? AND status = ? AND created_at < ?",
			domain.TransactionWithdrawal, domain.TransactionPending, cutoff).
		Find(&txModels).Error
	if err != nil {
		return nil, err
	}
	txs := make([]*domain.WalletTransaction, len(txModels))
	for i, model := range txModels {
		txs[i] = mappers.ToDomainWalletTransaction(&model)
	}
	return txs, nil
}

// WithdrawWithLock serializes withdrawals per user with an advisory
// transaction lock, then folds the balance and appends inside the same
// DB transaction. Two concurrent requests queue on the lock; the second
// sees the first one's pending row.
func (r *DefaultWalletRepository) WithdrawWithLock(ctx context.Context, userID string, fn func(balance float64) (*domain.WalletTransaction, error)) (*domain.WalletTransaction, error) {
	var created *domain.WalletTransaction
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", userID).Error; err != nil {
			return err
		}
		balance, err := r.sumBalance(tx, userID)
		if err != nil {
			return err
		}
		withdrawal, err := fn(balance)
		if err != nil {
			return err
		}
		if err := tx.Create(mappers.ToGORMWalletTransaction(withdrawal)).Error; err != nil {
			return err
		}
		created = withdrawal
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
