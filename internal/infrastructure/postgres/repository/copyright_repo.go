package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/mappers"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultCopyrightRepository struct {
	DB *gorm.DB
}

func NewDefaultCopyrightRepository(db *gorm.DB) *DefaultCopyrightRepository {
	return &DefaultCopyrightRepository{DB: db}
}

func (r *DefaultCopyrightRepository) CreateRegistration(ctx context.Context, reg *domain.CopyrightRegistration) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMRegistration(reg)).Error
}

// GetRegistrationByID accepts both the row UUID and the public
// CR- identifier. The id column is uuid-typed and Postgres rejects a
// non-UUID bound against it, so the lookup column is chosen by
// identifier shape.
func (r *DefaultCopyrightRepository) GetRegistrationByID(ctx context.Context, id string) (*domain.CopyrightRegistration, error) {
	var model models.CopyrightRegistrationModel
	if err := r.DB.WithContext(ctx).First(&model, registrationLookupColumn(id)+" = ?", id).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainRegistration(&model), nil
}

func registrationLookupColumn(id string) string {
	if _, err := uuid.Parse(id); err == nil {
		return "id"
	}
	return "copyright_id"
}

func (r *DefaultCopyrightRepository) GetRegistrationsByArtistID(ctx context.Context, artistID string) ([]*domain.CopyrightRegistration, error) {
	return r.findRegistrations(ctx, "artist_id = ?", artistID)
}

func (r *DefaultCopyrightRepository) GetRegistrationsBySongID(ctx context.Context, songID string) ([]*domain.CopyrightRegistration, error) {
	return r.findRegistrations(ctx, "song_id = ?", songID)
}

func (r *DefaultCopyrightRepository) findRegistrations(ctx context.Context, query string, arg any) ([]*domain.CopyrightRegistration, error) {
	var regModels []models.CopyrightRegistrationModel
	err := r.DB.WithContext(ctx).
		Where(query, arg).
		Order("registration_date DESC").
		Find(&regModels).Error
	if err != nil {
		return nil, err
	}
	regs := make([]*domain.CopyrightRegistration, len(regModels))
	for i, model := range regModels {
		regs[i] = mappers.ToDomainRegistration(&model)
	}
	return regs, nil
}

// CountRegistrationsSince counts quota-relevant registrations: rejected
// ones do not consume quota.
func (r *DefaultCopyrightRepository) CountRegistrationsSince(ctx context.Context, artistID string, since time.Time) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).
		Model(&models.CopyrightRegistrationModel{}).
		Where("artist_id = ? AND registration_date >= ? AND status IN ?",
			artistID, since, []domain.CopyrightStatus{domain.CopyrightPending, domain.CopyrightActive}).
		Count(&count).Error
	return count, err
}

func (r *DefaultCopyrightRepository) UpdateRegistrationStatus(ctx context.Context, id string, status domain.CopyrightStatus, reviewedAt time.Time) error {
	return r.DB.WithContext(ctx).
		Model(&models.CopyrightRegistrationModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "reviewed_at": reviewedAt}).Error
}

func (r *DefaultCopyrightRepository) FindPendingAutomaticBefore(ctx context.Context, cutoff time.Time) ([]*domain.CopyrightRegistration, error) {
	var regModels []models.CopyrightRegistrationModel
	err := r.DB.WithContext(ctx).
		Where("status = ? AND type = ? AND registration_date < ?",
			domain.CopyrightPending, domain.RegistrationAutomatic, cutoff).
		Find(&regModels).Error
	if err != nil {
		return nil, err
	}
	regs := make([]*domain.CopyrightRegistration, len(regModels))
	for i, model := range regModels {
		regs[i] = mappers.ToDomainRegistration(&model)
	}
	return regs, nil
}
