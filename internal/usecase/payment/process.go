package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/metalaloud/royalty-service/internal/domain"
	publisher "github.com/metalaloud/royalty-service/internal/infrastructure/kafka"
	"github.com/metalaloud/royalty-service/internal/infrastructure/logger"
	royalty "github.com/metalaloud/royalty-service/internal/usecase"
	paymentdto "github.com/metalaloud/royalty-service/internal/usecase/dto/payment"
	walletdto "github.com/metalaloud/royalty-service/internal/usecase/dto/wallet"
)

// ProcessPayment runs the whole checkout: validation, amount cross-check,
// stock check, gateway charge, then one DB transaction for stock
// decrement plus order insert, then royalty posting per artist.
func (uc *DefaultPaymentUsecase) ProcessPayment(ctx context.Context, input *paymentdto.ProcessPaymentInput) (*paymentdto.ProcessPaymentOutput, error) {
	start := time.Now()

	if err := validatePaymentInput(input, time.Now()); err != nil {
		return nil, uc.failPayment(ctx, input, err)
	}

	products, err := uc.loadProducts(ctx, input.Items)
	if err != nil {
		return nil, uc.failPayment(ctx, input, err)
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	total := 0.0
	for _, item := range input.Items {
		product := products[item.ProductID]
		items = append(items, domain.OrderItem{
			ProductID:   product.ID,
			ArtistID:    product.ArtistID,
			Quantity:    item.Quantity,
			PriceAtTime: product.Price,
		})
		total += product.Price * float64(item.Quantity)
	}
	total = royalty.RoundCurrency(total)

	if err := checkAmountMatch(input.Amount, total); err != nil {
		return nil, uc.failPayment(ctx, input, err)
	}

	for _, item := range input.Items {
		product := products[item.ProductID]
		if product.StockQuantity < item.Quantity {
			return nil, uc.failPayment(ctx, input, domain.NewValidationError(domain.CategoryStock,
				"product %s has %d in stock, %d requested", product.ID, product.StockQuantity, item.Quantity))
		}
	}

	charge, err := uc.gateway.Charge(ctx, domain.GatewayCharge{
		Amount:   total,
		Currency: "USD",
		Card:     input.Card,
	})
	if err != nil {
		return nil, uc.failPayment(ctx, input, fmt.Errorf("%w: %v", domain.ErrGateway, err))
	}

	order := &domain.Order{
		ID:              uuid.New().String(),
		UserID:          input.UserID,
		Items:           items,
		Status:          domain.OrderPaid,
		TotalAmount:     total,
		ShippingAddress: input.ShippingAddress,
		GatewayTxID:     charge.TransactionID,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	// Stock decrement and order insert commit or fail together. A
	// concurrent checkout draining the stock surfaces here as
	// ErrOutOfStock even though the earlier check passed.
	if err := uc.orderRepo.CreateOrderWithStock(ctx, order); err != nil {
		if errors.Is(err, domain.ErrOutOfStock) {
			return nil, uc.failPayment(ctx, input, domain.NewValidationError(domain.CategoryStock, "stock changed during checkout"))
		}
		return nil, uc.failPayment(ctx, input, err)
	}

	uc.postRoyalties(ctx, order)
	uc.metrics.RecordPaymentProcessed(order.TotalAmount)
	uc.logPayment(ctx, order, charge.TransactionID)

	if uc.kafkaPublisher != nil {
		go func(event publisher.SaleEvent) {
			if err := uc.kafkaPublisher.PublishSale(event); err != nil {
				slog.Error("failed to publish SaleEvent:paid", "error", err.Error())
			}
		}(publisher.SaleEvent{
			OrderID:       order.ID,
			UserID:        order.UserID,
			Status:        string(order.Status),
			TotalAmount:   order.TotalAmount,
			Currency:      "USD",
			TransactionID: charge.TransactionID,
		})
	}

	slog.Info("payment processed",
		"order_id", order.ID,
		"user_id", order.UserID,
		"amount", order.TotalAmount,
		"elapsed", time.Since(start),
	)

	return &paymentdto.ProcessPaymentOutput{
		OrderID:       order.ID,
		TransactionID: charge.TransactionID,
		TotalAmount:   order.TotalAmount,
	}, nil
}

func (uc *DefaultPaymentUsecase) loadProducts(ctx context.Context, items []paymentdto.ItemInput) (map[string]*domain.Product, error) {
	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}
	products, err := uc.productRepo.GetProductsByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	byID := make(map[string]*domain.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}
	for _, item := range items {
		if _, ok := byID[item.ProductID]; !ok {
			return nil, domain.NewValidationError(domain.CategoryGeneric, "unknown product %s", item.ProductID)
		}
	}
	return byID, nil
}

// postRoyalties posts net proceeds per artist: the commission rate is
// resolved against the artist's cumulative completed sales so far.
func (uc *DefaultPaymentUsecase) postRoyalties(ctx context.Context, order *domain.Order) {
	grossByArtist := make(map[string]float64)
	for _, item := range order.Items {
		grossByArtist[item.ArtistID] += item.PriceAtTime * float64(item.Quantity)
	}

	for artistID, gross := range grossByArtist {
		gross = royalty.RoundCurrency(gross)
		cumulative, err := uc.walletRepo.SumCompletedSales(ctx, artistID)
		if err != nil {
			slog.Error("failed to read cumulative earnings, using default rate", "artist_id", artistID, "error", err.Error())
			cumulative = 0
		}
		rate, err := uc.commissionUsecase.ResolveRate(ctx, cumulative)
		if err != nil {
			slog.Error("failed to resolve commission rate, using default", "artist_id", artistID, "error", err.Error())
			rate = domain.DefaultCommissionRate
		}
		commission := royalty.RoundCurrency(gross * rate / 100)
		if _, err := uc.walletUsecase.RecordSale(ctx, &walletdto.RecordSaleInput{
			UserID:      artistID,
			GrossAmount: gross,
			Commission:  commission,
			Reference:   order.ID,
		}); err != nil {
			slog.Error("failed to post sale to wallet", "artist_id", artistID, "order_id", order.ID, "error", err.Error())
		}
	}
}

func (uc *DefaultPaymentUsecase) failPayment(ctx context.Context, input *paymentdto.ProcessPaymentInput, cause error) error {
	category := domain.CategoryGeneric
	var verr *domain.ValidationError
	if errors.As(cause, &verr) {
		category = verr.Category
	} else if errors.Is(cause, domain.ErrGateway) {
		category = domain.CategoryGateway
	}

	uc.metrics.RecordPaymentFailed(string(category))
	if uc.eventLogger != nil {
		if err := uc.eventLogger.LogPaymentFailed(ctx, logger.PaymentFailedEvent{
			UserID:    input.UserID,
			Amount:    input.Amount,
			Reason:    cause.Error(),
			Category:  string(category),
			Timestamp: time.Now(),
		}); err != nil {
			slog.Error("failed to write payment audit record", "error", err.Error())
		}
	}
	return cause
}

func (uc *DefaultPaymentUsecase) logPayment(ctx context.Context, order *domain.Order, gatewayTxID string) {
	if uc.eventLogger == nil {
		return
	}
	if err := uc.eventLogger.LogPaymentProcessed(ctx, logger.PaymentProcessedEvent{
		OrderID:       order.ID,
		UserID:        order.UserID,
		Amount:        order.TotalAmount,
		TransactionID: gatewayTxID,
		Timestamp:     time.Now(),
	}); err != nil {
		slog.Error("failed to write payment audit record", "order_id", order.ID, "error", err.Error())
	}
}
