package publisher

import (
	"encoding/json"

	"github.com/metalaloud/royalty-service/internal/domain"
)

type SaleEvent struct {
	OrderID       string  `json:"order_id"`
	UserID        string  `json:"user_id"`
	Status        string  `json:"status"`
	TotalAmount   float64 `json:"total_amount"`
	Currency      string  `json:"currency"`
	TransactionID string  `json:"transaction_id"`
}

type CopyrightEvent struct {
	RegistrationID  string `json:"registration_id"`
	CopyrightID     string `json:"copyright_id"`
	SongID          string `json:"song_id"`
	ArtistID        string `json:"artist_id"`
	Status          string `json:"status"`
	ProtectionLevel string `json:"protection_level"`
}

func (k *KafkaPublisher) PublishSale(event SaleEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(domain.Message{Key: []byte(event.UserID), Value: v})
}

func (k *KafkaPublisher) PublishCopyright(event CopyrightEvent) error {
	v, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return k.Publish(domain.Message{Key: []byte(event.ArtistID), Value: v})
}
