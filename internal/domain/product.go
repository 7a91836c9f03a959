package domain

import "context"

type Product struct {
	ID            string
	ArtistID      string
	Name          string
	Price         float64
	StockQuantity int
	Category      string
}

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *Product) error
	GetProductByID(ctx context.Context, id string) (*Product, error)
	GetProductsByIDs(ctx context.Context, ids []string) ([]*Product, error)
	UpdateProduct(ctx context.Context, product *Product) error
}
