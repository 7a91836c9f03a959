package postgres

import (
	"log"

	"github.com/metalaloud/royalty-service/internal/config"
	"github.com/metalaloud/royalty-service/internal/infrastructure/logger"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.RoyaltyConfig) *gorm.DB {
	dsn := cfg.RoyaltyDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(
		&models.CommissionTierModel{},
		&models.CopyrightRegistrationModel{},
		&models.WalletTransactionModel{},
		&models.OrderModel{},
		&models.OrderItemModel{},
		&models.ProductModel{},
		&models.SongModel{},
		&models.SubscriptionModel{},
		&logger.PaymentProcessedEvent{},
		&logger.PaymentFailedEvent{},
	)

	return db
}
