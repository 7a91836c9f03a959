package models

import (
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
)

type OrderModel struct {
	ID          string             `gorm:"primaryKey;type:uuid"`
	UserID      string             `gorm:"type:uuid;index"`
	Status      domain.OrderStatus `gorm:"index:idx_status_created"`
	TotalAmount float64
	GatewayTxID string

	ShippingFullName   string
	ShippingStreet     string
	ShippingCity       string
	ShippingPostalCode string
	ShippingCountry    string

	Items []OrderItemModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`

	CreatedAt time.Time `gorm:"index:idx_status_created"`
	UpdatedAt time.Time
}

type OrderItemModel struct {
	ID          uint   `gorm:"primaryKey"`
	OrderID     string `gorm:"type:uuid;index"`
	ProductID   string `gorm:"type:uuid;index"`
	ArtistID    string `gorm:"type:uuid;index"`
	Quantity    int
	PriceAtTime float64
}
