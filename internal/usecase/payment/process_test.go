package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
	paymentdto "github.com/metalaloud/royalty-service/internal/usecase/dto/payment"
	walletdto "github.com/metalaloud/royalty-service/internal/usecase/dto/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOrderRepo struct {
	orders    map[string]*domain.Order
	createErr error
	restored  []string
	statusLog map[string]domain.OrderStatus
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:    make(map[string]*domain.Order),
		statusLog: make(map[string]domain.OrderStatus),
	}
}

func (f *fakeOrderRepo) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	order, ok := f.orders[orderID]
	if !ok {
		return nil, fmt.Errorf("order %s not found", orderID)
	}
	return order, nil
}

func (f *fakeOrderRepo) GetOrdersByUserID(ctx context.Context, userID string, page, limit int64) ([]*domain.Order, int64, error) {
	var out []*domain.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeOrderRepo) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	f.statusLog[orderID] = status
	if order, ok := f.orders[orderID]; ok {
		order.Status = status
	}
	return nil
}

func (f *fakeOrderRepo) FindPendingOrdersBefore(ctx context.Context, cutoff time.Time) ([]*domain.Order, error) {
	var out []*domain.Order
	for _, order := range f.orders {
		if order.Status == domain.OrderPending && order.CreatedAt.Before(cutoff) {
			out = append(out, order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) CreateOrderWithStock(ctx context.Context, order *domain.Order) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) RestoreStockForOrder(ctx context.Context, order *domain.Order) error {
	f.restored = append(f.restored, order.ID)
	order.Status = domain.OrderRefunded
	return nil
}

type fakeProductRepo struct {
	products map[string]*domain.Product
}

func (f *fakeProductRepo) CreateProduct(ctx context.Context, product *domain.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s not found", id)
	}
	return product, nil
}

func (f *fakeProductRepo) GetProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			out = append(out, product)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) UpdateProduct(ctx context.Context, product *domain.Product) error {
	f.products[product.ID] = product
	return nil
}

type fakeLedger struct {
	completedSales map[string]float64
}

func (f *fakeLedger) CreateTransaction(ctx context.Context, tx *domain.WalletTransaction) error {
	return nil
}

func (f *fakeLedger) GetTransactionByID(ctx context.Context, id string) (*domain.WalletTransaction, error) {
	return nil, fmt.Errorf("not found")
}

func (f *fakeLedger) GetTransactionsByUserID(ctx context.Context, userID string, page, limit int64) ([]*domain.WalletTransaction, int64, error) {
	return nil, 0, nil
}

func (f *fakeLedger) UpdateTransactionStatus(ctx context.Context, id string, status domain.TransactionStatus) error {
	return nil
}

func (f *fakeLedger) SumBalance(ctx context.Context, userID string) (float64, error) {
	return f.completedSales[userID], nil
}

func (f *fakeLedger) SumCompletedSales(ctx context.Context, userID string) (float64, error) {
	return f.completedSales[userID], nil
}

func (f *fakeLedger) FindPendingWithdrawalsBefore(ctx context.Context, cutoff time.Time) ([]*domain.WalletTransaction, error) {
	return nil, nil
}

func (f *fakeLedger) WithdrawWithLock(ctx context.Context, userID string, fn func(balance float64) (*domain.WalletTransaction, error)) (*domain.WalletTransaction, error) {
	return fn(f.completedSales[userID])
}

type saleCall struct {
	userID     string
	gross      float64
	commission float64
	reference  string
}

type refundCall struct {
	userID    string
	net       float64
	reference string
}

type fakeWallet struct {
	sales   []saleCall
	refunds []refundCall
}

func (f *fakeWallet) GetBalance(ctx context.Context, userID string) (float64, error) { return 0, nil }

func (f *fakeWallet) RequestWithdrawal(ctx context.Context, input *walletdto.RequestWithdrawalInput) (*domain.WalletTransaction, error) {
	return nil, nil
}

func (f *fakeWallet) RecordSale(ctx context.Context, input *walletdto.RecordSaleInput) (*domain.WalletTransaction, error) {
	f.sales = append(f.sales, saleCall{input.UserID, input.GrossAmount, input.Commission, input.Reference})
	return &domain.WalletTransaction{}, nil
}

func (f *fakeWallet) RecordRefund(ctx context.Context, userID string, amount float64, reference string) (*domain.WalletTransaction, error) {
	f.refunds = append(f.refunds, refundCall{userID, amount, reference})
	return &domain.WalletTransaction{}, nil
}

func (f *fakeWallet) CompleteWithdrawal(ctx context.Context, txID string) error { return nil }
func (f *fakeWallet) FailWithdrawal(ctx context.Context, txID string) error     { return nil }

func (f *fakeWallet) ListTransactions(ctx context.Context, input *walletdto.ListTransactionsInput) (*walletdto.ListTransactionsOutput, error) {
	return &walletdto.ListTransactionsOutput{}, nil
}

func (f *fakeWallet) ExpirePendingWithdrawals(ctx context.Context, ttl time.Duration) error {
	return nil
}

type fakeCommission struct {
	rate float64
}

func (f *fakeCommission) ResolveRate(ctx context.Context, amount float64) (float64, error) {
	return f.rate, nil
}

func (f *fakeCommission) NetEarnings(ctx context.Context, amount float64) (float64, float64, error) {
	return amount * (1 - f.rate/100), f.rate, nil
}

func (f *fakeCommission) ListTiers(ctx context.Context) ([]*domain.CommissionTier, error) {
	return nil, nil
}

func (f *fakeCommission) ReplaceTiers(ctx context.Context, tiers []*domain.CommissionTier) error {
	return nil
}

type fakeGateway struct {
	charges []domain.GatewayCharge
	err     error
}

func (f *fakeGateway) Charge(ctx context.Context, charge domain.GatewayCharge) (*domain.GatewayResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.charges = append(f.charges, charge)
	return &domain.GatewayResult{TransactionID: "txn_test"}, nil
}

type paymentFixture struct {
	uc       *DefaultPaymentUsecase
	orders   *fakeOrderRepo
	products *fakeProductRepo
	wallet   *fakeWallet
	gateway  *fakeGateway
}

func newPaymentFixture() *paymentFixture {
	orders := newFakeOrderRepo()
	products := &fakeProductRepo{products: map[string]*domain.Product{
		"prod-1": {ID: "prod-1", ArtistID: "artist-a", Name: "Vinyl", Price: 20.00, StockQuantity: 10},
		"prod-2": {ID: "prod-2", ArtistID: "artist-b", Name: "Shirt", Price: 15.00, StockQuantity: 3},
	}}
	wallet := &fakeWallet{}
	gw := &fakeGateway{}
	uc := NewDefaultPaymentUsecase(
		orders,
		products,
		&fakeLedger{completedSales: map[string]float64{}},
		wallet,
		&fakeCommission{rate: 8},
		gw,
		nil,
		nil,
		nil,
	)
	return &paymentFixture{uc: uc, orders: orders, products: products, wallet: wallet, gateway: gw}
}

func TestProcessPayment(t *testing.T) {
	f := newPaymentFixture()
	input := validInput()
	input.Amount = 50.00
	input.Items = []paymentdto.ItemInput{
		{ProductID: "prod-1", Quantity: 1},
		{ProductID: "prod-2", Quantity: 2},
	}

	out, err := f.uc.ProcessPayment(context.Background(), input)
	require.NoError(t, err)
	assert.NotEmpty(t, out.OrderID)
	assert.Equal(t, "txn_test", out.TransactionID)
	assert.Equal(t, 50.00, out.TotalAmount)

	order, err := f.orders.GetOrderByID(context.Background(), out.OrderID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPaid, order.Status)
	assert.Equal(t, "txn_test", order.GatewayTxID)
	assert.Len(t, order.Items, 2)

	require.Len(t, f.wallet.sales, 2)
	byArtist := map[string]saleCall{}
	for _, sale := range f.wallet.sales {
		byArtist[sale.userID] = sale
		assert.Equal(t, out.OrderID, sale.reference)
	}
	assert.Equal(t, 20.00, byArtist["artist-a"].gross)
	assert.Equal(t, 1.60, byArtist["artist-a"].commission)
	assert.Equal(t, 30.00, byArtist["artist-b"].gross)
	assert.Equal(t, 2.40, byArtist["artist-b"].commission)
}

func TestProcessPaymentAmountMismatch(t *testing.T) {
	f := newPaymentFixture()
	input := validInput()
	input.Amount = 50.02
	input.Items = []paymentdto.ItemInput{
		{ProductID: "prod-1", Quantity: 1},
		{ProductID: "prod-2", Quantity: 2},
	}

	_, err := f.uc.ProcessPayment(context.Background(), input)
	assertCategory(t, err, domain.CategoryAmount)
	assert.Empty(t, f.gateway.charges, "gateway must not be charged on mismatch")
}

func TestProcessPaymentToleratesOneCentDrift(t *testing.T) {
	f := newPaymentFixture()
	input := validInput()
	input.Amount = 50.01
	input.Items = []paymentdto.ItemInput{
		{ProductID: "prod-1", Quantity: 1},
		{ProductID: "prod-2", Quantity: 2},
	}

	out, err := f.uc.ProcessPayment(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, 50.00, out.TotalAmount)
}

func TestProcessPaymentInsufficientStock(t *testing.T) {
	f := newPaymentFixture()
	input := validInput()
	input.Amount = 60.00
	input.Items = []paymentdto.ItemInput{{ProductID: "prod-2", Quantity: 4}}

	_, err := f.uc.ProcessPayment(context.Background(), input)
	assertCategory(t, err, domain.CategoryStock)
	assert.Empty(t, f.gateway.charges)
}

func TestProcessPaymentUnknownProduct(t *testing.T) {
	f := newPaymentFixture()
	input := validInput()
	input.Items = []paymentdto.ItemInput{{ProductID: "nope", Quantity: 1}}

	_, err := f.uc.ProcessPayment(context.Background(), input)
	assertCategory(t, err, domain.CategoryGeneric)
}

func TestProcessPaymentGatewayFailure(t *testing.T) {
	f := newPaymentFixture()
	f.gateway.err = errors.New("connection reset")
	input := validInput()
	input.Amount = 20.00
	input.Items = []paymentdto.ItemInput{{ProductID: "prod-1", Quantity: 1}}

	_, err := f.uc.ProcessPayment(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrGateway)
	assert.Empty(t, f.orders.orders)
}

func TestProcessPaymentStockRace(t *testing.T) {
	f := newPaymentFixture()
	f.orders.createErr = domain.ErrOutOfStock
	input := validInput()
	input.Amount = 20.00
	input.Items = []paymentdto.ItemInput{{ProductID: "prod-1", Quantity: 1}}

	_, err := f.uc.ProcessPayment(context.Background(), input)
	assertCategory(t, err, domain.CategoryStock)
}

func TestRefundOrder(t *testing.T) {
	f := newPaymentFixture()
	f.orders.orders["order-1"] = &domain.Order{
		ID:     "order-1",
		UserID: "user-1",
		Status: domain.OrderPaid,
		Items: []domain.OrderItem{
			{ProductID: "prod-1", ArtistID: "artist-a", Quantity: 2, PriceAtTime: 25.00},
		},
		TotalAmount: 50.00,
	}

	require.NoError(t, f.uc.RefundOrder(context.Background(), "order-1"))
	assert.Equal(t, []string{"order-1"}, f.orders.restored)

	require.Len(t, f.wallet.refunds, 1)
	assert.Equal(t, "artist-a", f.wallet.refunds[0].userID)
	// 50 gross at 8% reverses the 46.00 net credit
	assert.Equal(t, 46.00, f.wallet.refunds[0].net)
	assert.Equal(t, "order-1", f.wallet.refunds[0].reference)
}

func TestRefundOrderOnlyPaid(t *testing.T) {
	f := newPaymentFixture()
	f.orders.orders["order-1"] = &domain.Order{ID: "order-1", Status: domain.OrderRefunded}

	err := f.uc.RefundOrder(context.Background(), "order-1")
	assert.ErrorIs(t, err, domain.ErrOrderNotRefundable)
	assert.Empty(t, f.wallet.refunds)
}

func TestCancelExpiredOrders(t *testing.T) {
	f := newPaymentFixture()
	f.orders.orders["stale"] = &domain.Order{
		ID:        "stale",
		Status:    domain.OrderPending,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}
	f.orders.orders["fresh"] = &domain.Order{
		ID:        "fresh",
		Status:    domain.OrderPending,
		CreatedAt: time.Now(),
	}
	f.orders.orders["paid"] = &domain.Order{
		ID:        "paid",
		Status:    domain.OrderPaid,
		CreatedAt: time.Now().Add(-48 * time.Hour),
	}

	require.NoError(t, f.uc.CancelExpiredOrders(context.Background(), 24*time.Hour))
	assert.Equal(t, domain.OrderCanceled, f.orders.orders["stale"].Status)
	assert.Equal(t, domain.OrderPending, f.orders.orders["fresh"].Status)
	assert.Equal(t, domain.OrderPaid, f.orders.orders["paid"].Status)
}
