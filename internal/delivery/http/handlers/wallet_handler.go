package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/request"
	"github.com/metalaloud/royalty-service/internal/delivery/http/dto/response"
	"github.com/metalaloud/royalty-service/internal/domain"
	royalty "github.com/metalaloud/royalty-service/internal/usecase"
	walletdto "github.com/metalaloud/royalty-service/internal/usecase/dto/wallet"
)

type WalletHandler struct {
	uc royalty.WalletUsecase
}

func NewWalletHandler(uc royalty.WalletUsecase) *WalletHandler {
	return &WalletHandler{uc: uc}
}

func (h *WalletHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	balance, err := h.uc.GetBalance(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, response.BalanceResponse{UserID: userID, Balance: balance})
}

func (h *WalletHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	var req request.WithdrawalRequest
	if !decodeBody(w, r, &req) {
		return
	}

	tx, err := h.uc.RequestWithdrawal(r.Context(), &walletdto.RequestWithdrawalInput{
		UserID: mux.Vars(r)["userID"],
		Amount: req.Amount,
		BankDetails: domain.BankDetails{
			AccountHolder: req.BankDetails.AccountHolder,
			AccountNumber: req.BankDetails.AccountNumber,
			BankName:      req.BankDetails.BankName,
			RoutingNumber: req.BankDetails.RoutingNumber,
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTransactionResponse(tx))
}

func (h *WalletHandler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.ParseInt(r.URL.Query().Get("page"), 10, 64)
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	out, err := h.uc.ListTransactions(r.Context(), &walletdto.ListTransactionsInput{
		UserID: mux.Vars(r)["userID"],
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	body := response.TransactionListResponse{
		Transactions: make([]response.TransactionResponse, len(out.Transactions)),
		Total:        out.Total,
	}
	for i, tx := range out.Transactions {
		body.Transactions[i] = toTransactionResponse(tx)
	}
	writeJSON(w, http.StatusOK, body)
}

func toTransactionResponse(tx *domain.WalletTransaction) response.TransactionResponse {
	return response.TransactionResponse{
		ID:        tx.ID,
		UserID:    tx.UserID,
		Type:      string(tx.Type),
		Amount:    tx.Amount,
		Status:    string(tx.Status),
		Reference: tx.Reference,
		CreatedAt: tx.CreatedAt,
	}
}
