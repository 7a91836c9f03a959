package request

type RegisterCopyrightRequest struct {
	SongID          string `json:"song_id"`
	ArtistID        string `json:"artist_id"`
	Type            string `json:"type"`
	UseSubscription bool   `json:"use_subscription"`
}

type ReviewCopyrightRequest struct {
	Approve bool `json:"approve"`
}

type BankDetailsPayload struct {
	AccountHolder string `json:"account_holder"`
	AccountNumber string `json:"account_number"`
	BankName      string `json:"bank_name"`
	RoutingNumber string `json:"routing_number"`
}

type WithdrawalRequest struct {
	Amount      float64            `json:"amount"`
	BankDetails BankDetailsPayload `json:"bank_details"`
}

type CardPayload struct {
	Number      string `json:"number"`
	ExpiryMonth int    `json:"expiry_month"`
	ExpiryYear  int    `json:"expiry_year"`
	CVV         string `json:"cvv"`
	HolderName  string `json:"holder_name"`
}

type ItemPayload struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type ShippingPayload struct {
	FullName   string `json:"full_name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type ProcessPaymentRequest struct {
	UserID          string          `json:"user_id"`
	Amount          float64         `json:"amount"`
	Card            CardPayload     `json:"card"`
	Items           []ItemPayload   `json:"items"`
	ShippingAddress ShippingPayload `json:"shipping_address"`
}

type TierPayload struct {
	ID          string   `json:"id,omitempty"`
	MinAmount   float64  `json:"min_amount"`
	MaxAmount   *float64 `json:"max_amount"`
	RatePercent float64  `json:"rate_percent"`
	Active      bool     `json:"active"`
}

type ReplaceTiersRequest struct {
	Tiers []TierPayload `json:"tiers"`
}

type CreateProductRequest struct {
	ArtistID      string  `json:"artist_id"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Category      string  `json:"category"`
}

type UpdateProductRequest struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	Category      string  `json:"category"`
}

type CreateSongRequest struct {
	ArtistID string `json:"artist_id"`
	Title    string `json:"title"`
	Genre    string `json:"genre"`
	AudioURL string `json:"audio_url"`
}
