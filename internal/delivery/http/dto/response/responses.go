package response

import "time"

type ErrorResponse struct {
	Error    string `json:"error"`
	Category string `json:"category,omitempty"`
}

type BalanceResponse struct {
	UserID  string  `json:"user_id"`
	Balance float64 `json:"balance"`
}

type TransactionResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	Reference string    `json:"reference,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int64                 `json:"total"`
}

type PaymentResponse struct {
	Success       bool    `json:"success"`
	OrderID       string  `json:"order_id"`
	TransactionID string  `json:"transaction_id"`
	TotalAmount   float64 `json:"total_amount"`
}

type CopyrightResponse struct {
	ID               string     `json:"id"`
	SongID           string     `json:"song_id"`
	ArtistID         string     `json:"artist_id"`
	CopyrightID      string     `json:"copyright_id"`
	Status           string     `json:"status"`
	Type             string     `json:"type"`
	ProtectionLevel  string     `json:"protection_level"`
	Fingerprint      string     `json:"fingerprint"`
	ContentHash      string     `json:"content_hash"`
	BlockchainHash   string     `json:"blockchain_hash"`
	RegistrationDate time.Time  `json:"registration_date"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
}

type CopyrightListResponse struct {
	Registrations []CopyrightResponse `json:"registrations"`
}

type TierResponse struct {
	ID          string   `json:"id"`
	MinAmount   float64  `json:"min_amount"`
	MaxAmount   *float64 `json:"max_amount"`
	RatePercent float64  `json:"rate_percent"`
	Active      bool     `json:"active"`
}

type TierListResponse struct {
	Tiers []TierResponse `json:"tiers"`
}

type ResolveRateResponse struct {
	Amount      float64 `json:"amount"`
	RatePercent float64 `json:"rate_percent"`
	NetEarnings float64 `json:"net_earnings"`
}

type OrderItemResponse struct {
	ProductID   string  `json:"product_id"`
	ArtistID    string  `json:"artist_id"`
	Quantity    int     `json:"quantity"`
	PriceAtTime float64 `json:"price_at_time"`
}

type OrderResponse struct {
	ID          string              `json:"id"`
	UserID      string              `json:"user_id"`
	Status      string              `json:"status"`
	TotalAmount float64             `json:"total_amount"`
	Items       []OrderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
}

type ProductResponse struct {
	ID            string  `json:"id"`
	ArtistID      string  `json:"artist_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Category      string  `json:"category"`
}

type SongResponse struct {
	ID        string    `json:"id"`
	ArtistID  string    `json:"artist_id"`
	Title     string    `json:"title"`
	Genre     string    `json:"genre"`
	AudioURL  string    `json:"audio_url"`
	CreatedAt time.Time `json:"created_at"`
}
