package mappers

import (
	"github.com/metalaloud/royalty-service/internal/domain"
	"github.com/metalaloud/royalty-service/internal/infrastructure/postgres/models"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	return &domain.Product{
		ID:            model.ID,
		ArtistID:      model.ArtistID,
		Name:          model.Name,
		Price:         model.Price,
		StockQuantity: model.StockQuantity,
		Category:      model.Category,
	}
}

func ToGORMProduct(product *domain.Product) *models.ProductModel {
	return &models.ProductModel{
		ID:            product.ID,
		ArtistID:      product.ArtistID,
		Name:          product.Name,
		Price:         product.Price,
		StockQuantity: product.StockQuantity,
		Category:      product.Category,
	}
}

func ToDomainSong(model *models.SongModel) *domain.Song {
	return &domain.Song{
		ID:        model.ID,
		ArtistID:  model.ArtistID,
		Title:     model.Title,
		Genre:     model.Genre,
		AudioURL:  model.AudioURL,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMSong(song *domain.Song) *models.SongModel {
	return &models.SongModel{
		ID:        song.ID,
		ArtistID:  song.ArtistID,
		Title:     song.Title,
		Genre:     song.Genre,
		AudioURL:  song.AudioURL,
		CreatedAt: song.CreatedAt,
	}
}

func ToDomainSubscription(model *models.SubscriptionModel) *domain.Subscription {
	return &domain.Subscription{
		ID:        model.ID,
		ArtistID:  model.ArtistID,
		Plan:      model.Plan,
		Period:    model.Period,
		Active:    model.Active,
		ExpiresAt: model.ExpiresAt,
	}
}
