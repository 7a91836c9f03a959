package domain

import (
	"context"
	"time"
)

type OrderStatus string

const (
	OrderPending  OrderStatus = "pending"
	OrderPaid     OrderStatus = "paid"
	OrderRefunded OrderStatus = "refunded"
	OrderCanceled OrderStatus = "canceled"
)

type OrderItem struct {
	ProductID   string
	ArtistID    string
	Quantity    int
	PriceAtTime float64
}

type ShippingAddress struct {
	FullName   string
	Street     string
	City       string
	PostalCode string
	Country    string
}

// CardDetails never leaves the process and is never persisted.
type CardDetails struct {
	Number      string
	ExpiryMonth int
	ExpiryYear  int
	CVV         string
	HolderName  string
}

type Order struct {
	ID              string
	UserID          string
	Items           []OrderItem
	Status          OrderStatus
	TotalAmount     float64
	ShippingAddress ShippingAddress
	GatewayTxID     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderRepository interface {
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	GetOrdersByUserID(ctx context.Context, userID string, page, limit int64) ([]*Order, int64, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) error
	FindPendingOrdersBefore(ctx context.Context, cutoff time.Time) ([]*Order, error)

	// CreateOrderWithStock decrements stock for every item and inserts the
	// order in a single DB transaction. Returns ErrOutOfStock if any
	// decrement would go negative; nothing is written in that case.
	CreateOrderWithStock(ctx context.Context, order *Order) error

	// RestoreStockForOrder reverses the stock decrement of a refunded order
	// and flips its status in the same DB transaction.
	RestoreStockForOrder(ctx context.Context, order *Order) error
}
