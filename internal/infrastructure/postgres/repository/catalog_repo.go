package repository

import (
	"context"
	"errors"

	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/mappers"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultProductRepository struct {
	DB *gorm.DB
}

func NewDefaultProductRepository(db *gorm.DB) *DefaultProductRepository {
	return &DefaultProductRepository{DB: db}
}

func (r *DefaultProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMProduct(product)).Error
}

func (r *DefaultProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	var model models.ProductModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainProduct(&model), nil
}

func (r *DefaultProductRepository) GetProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	var productModels []models.ProductModel
	if err := r.DB.WithContext(ctx).Where("id IN ?", ids).Find(&productModels).Error; err != nil {
		return nil, err
	}
	products := make([]*domain.Product, len(productModels))
	for i, model := range productModels {
		products[i] = mappers.ToDomainProduct(&model)
	}
	return products, nil
}

func (r *DefaultProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	return r.DB.WithContext(ctx).Save(mappers.ToGORMProduct(product)).Error
}

type DefaultSongRepository struct {
	DB *gorm.DB
}

func NewDefaultSongRepository(db *gorm.DB) *DefaultSongRepository {
	return &DefaultSongRepository{DB: db}
}

func (r *DefaultSongRepository) GetSongByID(ctx context.Context, id string) (*domain.Song, error) {
	var model models.SongModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return mappers.ToDomainSong(&model), nil
}

func (r *DefaultSongRepository) CreateSong(ctx context.Context, song *domain.Song) error {
	return r.DB.WithContext(ctx).Create(mappers.ToGORMSong(song)).Error
}

type DefaultSubscriptionRepository struct {
	DB *gorm.DB
}

func NewDefaultSubscriptionRepository(db *gorm.DB) *DefaultSubscriptionRepository {
	return &DefaultSubscriptionRepository{DB: db}
}

// GetActiveByArtistID returns nil without error when the artist has no
// active subscription: registration then proceeds at the basic level.
func (r *DefaultSubscriptionRepository) GetActiveByArtistID(ctx context.Context, artistID string) (*domain.Subscription, error) {
	var model models.SubscriptionModel
	err := r.DB.WithContext(ctx).
		Where("artist_id = ? AND active = ? AND expires_at > NOW()", artistID, true).
		Order("expires_at DESC").
		First(&model).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mappers.ToDomainSubscription(&model), nil
}
