package mappers

import (
	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
)

func ToDomainCommissionTier(model *models.CommissionTierModel) *domain.CommissionTier {
	return &domain.CommissionTier{
		ID:          model.ID,
		MinAmount:   model.MinAmount,
		MaxAmount:   model.MaxAmount,
		RatePercent: model.RatePercent,
		Active:      model.Active,
	}
}

func ToGORMCommissionTier(tier *domain.CommissionTier) *models.CommissionTierModel {
	return &models.CommissionTierModel{
		ID:          tier.ID,
		MinAmount:   tier.MinAmount,
		MaxAmount:   tier.MaxAmount,
		RatePercent: tier.RatePercent,
		Active:      tier.Active,
	}
}
