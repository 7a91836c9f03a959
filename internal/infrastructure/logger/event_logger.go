package logger

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type PaymentProcessedEvent struct {
	ID            uint `gorm:"primaryKey"`
	OrderID       string
	UserID        string
	Amount        float64
	TransactionID string
	Timestamp     time.Time
}

type PaymentFailedEvent struct {
	ID        uint `gorm:"primaryKey"`
	UserID    string
	Amount    float64
	Reason    string
	Category  string
	Timestamp time.Time
}

// PaymentEventLogger persists the audit trail of checkout outcomes.
type PaymentEventLogger interface {
	LogPaymentProcessed(ctx context.Context, event PaymentProcessedEvent) error
	LogPaymentFailed(ctx context.Context, event PaymentFailedEvent) error
}

type PGPaymentEventLogger struct {
	db *gorm.DB
}

func NewPGPaymentEventLogger(db *gorm.DB) *PGPaymentEventLogger {
	return &PGPaymentEventLogger{db: db}
}

func (l *PGPaymentEventLogger) LogPaymentProcessed(ctx context.Context, event PaymentProcessedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}

func (l *PGPaymentEventLogger) LogPaymentFailed(ctx context.Context, event PaymentFailedEvent) error {
	return l.db.WithContext(ctx).Create(&event).Error
}
