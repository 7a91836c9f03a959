package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/metalaloud/royalty-service/internal/domain"
	catalogdto "github.com/metalaloud/royalty-service/internal/usecase/dto/catalog"
)

// CatalogUsecase backs the admin surface that maintains the products
// and songs the payment and copyright flows operate on.
type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input *catalogdto.CreateProductInput) (*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	UpdateProduct(ctx context.Context, input *catalogdto.UpdateProductInput) (*domain.Product, error)
	CreateSong(ctx context.Context, input *catalogdto.CreateSongInput) (*domain.Song, error)
}

type DefaultCatalogUsecase struct {
	productRepo domain.ProductRepository
	songRepo    domain.SongRepository
}

func NewDefaultCatalogUsecase(productRepo domain.ProductRepository, songRepo domain.SongRepository) *DefaultCatalogUsecase {
	return &DefaultCatalogUsecase{productRepo: productRepo, songRepo: songRepo}
}

func (uc *DefaultCatalogUsecase) CreateProduct(ctx context.Context, input *catalogdto.CreateProductInput) (*domain.Product, error) {
	if input.ArtistID == "" {
		return nil, domain.NewValidationError(domain.CategoryGeneric, "artist_id is required")
	}
	if err := validateProductFields(input.Name, input.Price, input.StockQuantity); err != nil {
		return nil, err
	}

	product := &domain.Product{
		ID:            uuid.New().String(),
		ArtistID:      input.ArtistID,
		Name:          input.Name,
		Price:         RoundCurrency(input.Price),
		StockQuantity: input.StockQuantity,
		Category:      input.Category,
	}
	if err := uc.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return product, nil
}

func (uc *DefaultCatalogUsecase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	return uc.productRepo.GetProductByID(ctx, id)
}

// UpdateProduct replaces the mutable product fields. The artist binding
// is fixed at creation and never rewritten here.
func (uc *DefaultCatalogUsecase) UpdateProduct(ctx context.Context, input *catalogdto.UpdateProductInput) (*domain.Product, error) {
	if err := validateProductFields(input.Name, input.Price, input.StockQuantity); err != nil {
		return nil, err
	}

	product, err := uc.productRepo.GetProductByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	product.Name = input.Name
	product.Price = RoundCurrency(input.Price)
	product.StockQuantity = input.StockQuantity
	product.Category = input.Category

	if err := uc.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}
	return product, nil
}

func (uc *DefaultCatalogUsecase) CreateSong(ctx context.Context, input *catalogdto.CreateSongInput) (*domain.Song, error) {
	if input.ArtistID == "" {
		return nil, domain.NewValidationError(domain.CategoryGeneric, "artist_id is required")
	}
	if input.Title == "" {
		return nil, domain.NewValidationError(domain.CategoryGeneric, "title is required")
	}

	song := &domain.Song{
		ID:        uuid.New().String(),
		ArtistID:  input.ArtistID,
		Title:     input.Title,
		Genre:     input.Genre,
		AudioURL:  input.AudioURL,
		CreatedAt: time.Now().UTC(),
	}
	if err := uc.songRepo.CreateSong(ctx, song); err != nil {
		return nil, fmt.Errorf("failed to create song: %w", err)
	}
	return song, nil
}

func validateProductFields(name string, price float64, stock int) error {
	if name == "" {
		return domain.NewValidationError(domain.CategoryGeneric, "name is required")
	}
	if price < 0 {
		return domain.NewValidationError(domain.CategoryAmount, "price must be non-negative, got %f", price)
	}
	if stock < 0 {
		return domain.NewValidationError(domain.CategoryGeneric, "stock_quantity must be non-negative, got %d", stock)
	}
	return nil
}
