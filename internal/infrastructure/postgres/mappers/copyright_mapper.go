package mappers

import (
	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
)

func ToDomainRegistration(model *models.CopyrightRegistrationModel) *domain.CopyrightRegistration {
	return &domain.CopyrightRegistration{
		ID:               model.ID,
		SongID:           model.SongID,
		ArtistID:         model.ArtistID,
		CopyrightID:      model.CopyrightID,
		Status:           model.Status,
		Type:             model.Type,
		ProtectionLevel:  model.ProtectionLevel,
		Fingerprint:      model.Fingerprint,
		ContentHash:      model.ContentHash,
		BlockchainHash:   model.BlockchainHash,
		RegistrationDate: model.RegistrationDate,
		ReviewedAt:       model.ReviewedAt,
	}
}

func ToGORMRegistration(reg *domain.CopyrightRegistration) *models.CopyrightRegistrationModel {
	return &models.CopyrightRegistrationModel{
		ID:               reg.ID,
		SongID:           reg.SongID,
		ArtistID:         reg.ArtistID,
		CopyrightID:      reg.CopyrightID,
		Status:           reg.Status,
		Type:             reg.Type,
		ProtectionLevel:  reg.ProtectionLevel,
		Fingerprint:      reg.Fingerprint,
		ContentHash:      reg.ContentHash,
		BlockchainHash:   reg.BlockchainHash,
		RegistrationDate: reg.RegistrationDate,
		ReviewedAt:       reg.ReviewedAt,
	}
}
