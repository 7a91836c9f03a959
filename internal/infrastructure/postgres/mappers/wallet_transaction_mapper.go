package mappers

import (
	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
)

func ToDomainWalletTransaction(model *models.WalletTransactionModel) *domain.WalletTransaction {
	tx := &domain.WalletTransaction{
		ID:        model.ID,
		UserID:    model.UserID,
		Type:      model.Type,
		Amount:    model.Amount,
		Status:    model.Status,
		Reference: model.Reference,
		CreatedAt: model.CreatedAt,
	}
	if model.Type == domain.TransactionWithdrawal {
		tx.BankDetails = &domain.BankDetails{
			AccountHolder: model.BankAccountHolder,
			AccountNumber: model.BankAccountNumber,
			BankName:      model.BankName,
			RoutingNumber: model.BankRoutingNumber,
		}
	}
	return tx
}

func ToGORMWalletTransaction(tx *domain.WalletTransaction) *models.WalletTransactionModel {
	model := &models.WalletTransactionModel{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Type:      tx.Type,
		Amount:    tx.Amount,
		Status:    tx.Status,
		Reference: tx.Reference,
		CreatedAt: tx.CreatedAt,
	}
	if tx.BankDetails != nil {
		model.BankAccountHolder = tx.BankDetails.AccountHolder
		model.BankAccountNumber = tx.BankDetails.AccountNumber
		model.BankName = tx.BankDetails.BankName
		model.BankRoutingNumber = tx.BankDetails.RoutingNumber
	}
	return model
}
