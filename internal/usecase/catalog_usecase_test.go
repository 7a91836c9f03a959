package usecase

import (
	"context"
	"fmt"
	"testing"

	"github.com/metalaloud/royalty-service/internal/domain"
	catalogdto "github.com/metalaloud/royalty-service/internal/usecase/dto/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProductStore struct {
	products map[string]*domain.Product
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{products: make(map[string]*domain.Product)}
}

func (f *fakeProductStore) CreateProduct(ctx context.Context, product *domain.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductStore) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product %s not found", id)
	}
	copied := *product
	return &copied, nil
}

func (f *fakeProductStore) GetProductsByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	var out []*domain.Product
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			out = append(out, product)
		}
	}
	return out, nil
}

func (f *fakeProductStore) UpdateProduct(ctx context.Context, product *domain.Product) error {
	if _, ok := f.products[product.ID]; !ok {
		return fmt.Errorf("product %s not found", product.ID)
	}
	f.products[product.ID] = product
	return nil
}

type fakeSongStore struct {
	songs map[string]*domain.Song
}

func newFakeSongStore() *fakeSongStore {
	return &fakeSongStore{songs: make(map[string]*domain.Song)}
}

func (f *fakeSongStore) GetSongByID(ctx context.Context, id string) (*domain.Song, error) {
	song, ok := f.songs[id]
	if !ok {
		return nil, fmt.Errorf("song %s not found", id)
	}
	return song, nil
}

func (f *fakeSongStore) CreateSong(ctx context.Context, song *domain.Song) error {
	f.songs[song.ID] = song
	return nil
}

func TestCreateProduct(t *testing.T) {
	products := newFakeProductStore()
	uc := NewDefaultCatalogUsecase(products, newFakeSongStore())

	product, err := uc.CreateProduct(context.Background(), &catalogdto.CreateProductInput{
		ArtistID:      "artist-1",
		Name:          "Tour Shirt",
		Price:         24.999,
		StockQuantity: 50,
		Category:      "merch",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, product.ID)
	assert.Equal(t, 25.0, product.Price)

	stored, err := products.GetProductByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "artist-1", stored.ArtistID)
	assert.Equal(t, 50, stored.StockQuantity)
}

func TestCreateProductValidation(t *testing.T) {
	uc := NewDefaultCatalogUsecase(newFakeProductStore(), newFakeSongStore())

	cases := []struct {
		name  string
		input catalogdto.CreateProductInput
	}{
		{"missing artist", catalogdto.CreateProductInput{Name: "Shirt", Price: 10}},
		{"missing name", catalogdto.CreateProductInput{ArtistID: "artist-1", Price: 10}},
		{"negative price", catalogdto.CreateProductInput{ArtistID: "artist-1", Name: "Shirt", Price: -1}},
		{"negative stock", catalogdto.CreateProductInput{ArtistID: "artist-1", Name: "Shirt", Price: 10, StockQuantity: -5}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.CreateProduct(context.Background(), &tc.input)
			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestUpdateProductKeepsArtistBinding(t *testing.T) {
	products := newFakeProductStore()
	uc := NewDefaultCatalogUsecase(products, newFakeSongStore())

	created, err := uc.CreateProduct(context.Background(), &catalogdto.CreateProductInput{
		ArtistID:      "artist-1",
		Name:          "Vinyl",
		Price:         30,
		StockQuantity: 10,
		Category:      "music",
	})
	require.NoError(t, err)

	updated, err := uc.UpdateProduct(context.Background(), &catalogdto.UpdateProductInput{
		ID:            created.ID,
		Name:          "Vinyl Deluxe",
		Price:         35.556,
		StockQuantity: 8,
		Category:      "music",
	})
	require.NoError(t, err)
	assert.Equal(t, "artist-1", updated.ArtistID)
	assert.Equal(t, "Vinyl Deluxe", updated.Name)
	assert.Equal(t, 35.56, updated.Price)
	assert.Equal(t, 8, updated.StockQuantity)
}

func TestUpdateProductUnknownID(t *testing.T) {
	uc := NewDefaultCatalogUsecase(newFakeProductStore(), newFakeSongStore())

	_, err := uc.UpdateProduct(context.Background(), &catalogdto.UpdateProductInput{
		ID:    "missing",
		Name:  "Shirt",
		Price: 10,
	})
	assert.Error(t, err)
}

func TestCreateSong(t *testing.T) {
	songs := newFakeSongStore()
	uc := NewDefaultCatalogUsecase(newFakeProductStore(), songs)

	song, err := uc.CreateSong(context.Background(), &catalogdto.CreateSongInput{
		ArtistID: "artist-1",
		Title:    "Iron Dawn",
		Genre:    "metal",
		AudioURL: "https://cdn.example.com/iron-dawn.flac",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, song.ID)
	assert.False(t, song.CreatedAt.IsZero())

	stored, err := songs.GetSongByID(context.Background(), song.ID)
	require.NoError(t, err)
	assert.Equal(t, "Iron Dawn", stored.Title)

	_, err = uc.CreateSong(context.Background(), &catalogdto.CreateSongInput{ArtistID: "artist-1"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
}
