package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/mappers"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCommissionTierRepository struct {
	DB *gorm.DB
}

func NewDefaultCommissionTierRepository(db *gorm.DB) *DefaultCommissionTierRepository {
	return &DefaultCommissionTierRepository{DB: db}
}

func (r *DefaultCommissionTierRepository) ListTiers(ctx context.Context) ([]*domain.CommissionTier, error) {
	var tierModels []models.CommissionTierModel
	if err := r.DB.WithContext(ctx).Order("min_amount ASC").Find(&tierModels).Error; err != nil {
		return nil, err
	}
	tiers := make([]*domain.CommissionTier, len(tierModels))
	for i, model := range tierModels {
		tiers[i] = mappers.ToDomainCommissionTier(&model)
	}
	return tiers, nil
}

// ReplaceTiers swaps the whole set in one transaction so readers never
// observe a partially saved tier table.
func (r *DefaultCommissionTierRepository) ReplaceTiers(ctx context.Context, tiers []*domain.CommissionTier) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&models.CommissionTierModel{}).Error; err != nil {
			return err
		}
		for _, tier := range tiers {
			if tier.ID == "" {
				tier.ID = uuid.New().String()
			}
			if err := tx.Create(mappers.ToGORMCommissionTier(tier)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
