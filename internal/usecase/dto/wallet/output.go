package walletdto

import "github.com/metalaloud/royalty-service/internal/domain"

type ListTransactionsOutput struct {
	Transactions []*domain.WalletTransaction
	Total        int64
}
