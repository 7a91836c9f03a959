package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/metalaloud/royalty-service/internal/delivery/http/handlers"
)

type Handlers struct {
	Copyright  *handlers.CopyrightHandler
	Wallet     *handlers.WalletHandler
	Payment    *handlers.PaymentHandler
	Commission *handlers.CommissionHandler
	Catalog    *handlers.CatalogHandler
}

func NewRouter(h Handlers) *mux.Router {
	r := mux.NewRouter()

	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/copyrights", h.Copyright.Register).Methods(http.MethodPost)
	api.HandleFunc("/copyrights", h.Copyright.List).Methods(http.MethodGet)
	api.HandleFunc("/copyrights/{id}", h.Copyright.GetByID).Methods(http.MethodGet)
	api.HandleFunc("/copyrights/{id}/review", h.Copyright.Review).Methods(http.MethodPost)

	api.HandleFunc("/wallets/{userID}/balance", h.Wallet.GetBalance).Methods(http.MethodGet)
	api.HandleFunc("/wallets/{userID}/transactions", h.Wallet.ListTransactions).Methods(http.MethodGet)
	api.HandleFunc("/wallets/{userID}/withdrawals", h.Wallet.RequestWithdrawal).Methods(http.MethodPost)

	api.HandleFunc("/payments", h.Payment.ProcessPayment).Methods(http.MethodPost)
	api.HandleFunc("/orders", h.Payment.ListOrders).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}", h.Payment.GetOrder).Methods(http.MethodGet)
	api.HandleFunc("/orders/{id}/refund", h.Payment.RefundOrder).Methods(http.MethodPost)

	api.HandleFunc("/products", h.Catalog.CreateProduct).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", h.Catalog.GetProduct).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", h.Catalog.UpdateProduct).Methods(http.MethodPut)
	api.HandleFunc("/songs", h.Catalog.CreateSong).Methods(http.MethodPost)

	api.HandleFunc("/commission-tiers", h.Commission.ListTiers).Methods(http.MethodGet)
	api.HandleFunc("/commission-tiers", h.Commission.ReplaceTiers).Methods(http.MethodPut)
	api.HandleFunc("/commission-tiers/resolve", h.Commission.ResolveRate).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	return r
}
