package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/mappers"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var model models.OrderModel
	if err := r.DB.WithContext(ctx).Preload("Items").First(&model, "id = ?", orderID).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainOrder(&model), nil
}

func (r *DefaultOrderRepository) GetOrdersByUserID(ctx context.Context, userID string, page, limit int64) ([]*domain.Order, int64, error) {
	var orderModels []models.OrderModel
	var total int64

	baseQuery := r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("user_id = ?", userID)

	if err := baseQuery.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	offset := (page - 1) * limit
	err := baseQuery.
		Preload("Items").
		Order("created_at DESC").
		Offset(int(offset)).
		Limit(int(limit)).
		Find(&orderModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = mappers.ToDomainOrder(&model)
	}
	return orders, total, nil
}

func (r *DefaultOrderRepository) UpdateOrderStatus(ctx context.Context, orderID string, status domain.OrderStatus) error {
	return r.DB.WithContext(ctx).
		Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]any{"status": status, "updated_at": time.Now()}).Error
}

func (r *DefaultOrderRepository) FindPendingOrdersBefore(ctx context.Context, cutoff time.Time) ([]*domain.Order, error) {
	var orderModels []models.OrderModel
	err := r.DB.WithContext(ctx).
		Preload("Items").
		Where("status = ? AND created_at < ?", domain.OrderPending, cutoff).
		Find(&orderModels).Error
	if err != nil {
		return nil, err
	}
	orders := make([]*domain.Order, len(orderModels))
	for i, model := range orderModels {
		orders[i] = mappers.ToDomainOrder(&model)
	}
	return orders, nil
}

// CreateOrderWithStock decrements stock and inserts the order in one
// transaction. The conditional UPDATE makes the decrement safe against
// concurrent checkouts: zero affected rows means the stock moved.
func (r *DefaultOrderRepository) CreateOrderWithStock(ctx context.Context, order *domain.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			res := tx.Model(&models.ProductModel{}).
				Where("id = ? AND stock_quantity >= ?", item.ProductID, item.Quantity).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: product %s", domain.ErrOutOfStock, item.ProductID)
			}
		}
		return tx.Create(mappers.ToGORMOrder(order)).Error
	})
}

// RestoreStockForOrder reverses the decrement of a refunded order and
// flips the status in the same transaction.
func (r *DefaultOrderRepository) RestoreStockForOrder(ctx context.Context, order *domain.Order) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, item := range order.Items {
			err := tx.Model(&models.ProductModel{}).
				Where("id = ?", item.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}
		return tx.Model(&models.OrderModel{}).
			Where("id = ?", order.ID).
			Updates(map[string]any{"status": domain.OrderRefunded, "updated_at": time.Now()}).Error
	})
}
