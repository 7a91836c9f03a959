package models

type ProductModel struct {
	ID            string `gorm:"primaryKey;type:uuid"`
	ArtistID      string `gorm:"type:uuid;index"`
	Name          string
	Price         float64
	StockQuantity int
	Category      string `gorm:"index"`
}
