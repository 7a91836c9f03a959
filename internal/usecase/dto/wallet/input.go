package walletdto

import "github.com/metalaloud/royalty-service/internal/domain"

type RequestWithdrawalInput struct {
	UserID      string
	Amount      float64
	BankDetails domain.BankDetails
}

type RecordSaleInput struct {
	UserID      string
	GrossAmount float64
	Commission  float64
	Reference   string
}

type ListTransactionsInput struct {
	UserID string
	Page   int64
	Limit  int64
}
