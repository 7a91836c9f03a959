package catalogdto

type CreateProductInput struct {
	ArtistID      string
	Name          string
	Price         float64
	StockQuantity int
	Category      string
}

type UpdateProductInput struct {
	ID            string
	Name          string
	Price         float64
	StockQuantity int
	Category      string
}

type CreateSongInput struct {
	ArtistID string
	Title    string
	Genre    string
	AudioURL string
}
