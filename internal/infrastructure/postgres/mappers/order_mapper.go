package mappers

import (
	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	items := make([]domain.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = domain.OrderItem{
			ProductID:   item.ProductID,
			ArtistID:    item.ArtistID,
			Quantity:    item.Quantity,
			PriceAtTime: item.PriceAtTime,
		}
	}
	return &domain.Order{
		ID:          model.ID,
		UserID:      model.UserID,
		Items:       items,
		Status:      model.Status,
		TotalAmount: model.TotalAmount,
		GatewayTxID: model.GatewayTxID,
		ShippingAddress: domain.ShippingAddress{
			FullName:   model.ShippingFullName,
			Street:     model.ShippingStreet,
			City:       model.ShippingCity,
			PostalCode: model.ShippingPostalCode,
			Country:    model.ShippingCountry,
		},
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	items := make([]models.OrderItemModel, len(order.Items))
	for i, item := range order.Items {
		items[i] = models.OrderItemModel{
			OrderID:     order.ID,
			ProductID:   item.ProductID,
			ArtistID:    item.ArtistID,
			Quantity:    item.Quantity,
			PriceAtTime: item.PriceAtTime,
		}
	}
	return &models.OrderModel{
		ID:                 order.ID,
		UserID:             order.UserID,
		Status:             order.Status,
		TotalAmount:        order.TotalAmount,
		GatewayTxID:        order.GatewayTxID,
		ShippingFullName:   order.ShippingAddress.FullName,
		ShippingStreet:     order.ShippingAddress.Street,
		ShippingCity:       order.ShippingAddress.City,
		ShippingPostalCode: order.ShippingAddress.PostalCode,
		ShippingCountry:    order.ShippingAddress.Country,
		Items:              items,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}
