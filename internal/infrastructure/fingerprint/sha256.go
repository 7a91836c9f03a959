package fingerprint

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/metalaloud/royalty-service/internal/domain"
)

// SHA256Provider derives the audio identity digest from the audio URL
// and the registration timestamp. No audio decoding happens; real
// content fingerprinting can replace this behind the same interface.
type SHA256Provider struct{}

func NewSHA256Provider() *SHA256Provider {
	return &SHA256Provider{}
}

func (p *SHA256Provider) Fingerprint(_ context.Context, song *domain.Song, at int64) (string, error) {
	payload, err := json.Marshal(struct {
		AudioURL  string `json:"audio_url"`
		SongID    string `json:"song_id"`
		Timestamp int64  `json:"timestamp"`
	}{song.AudioURL, song.ID, at})
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(payload)
	return hex.EncodeToString(digest[:]), nil
}
