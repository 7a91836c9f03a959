package anchor

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// DigestAnchor computes the anchoring hash without writing anywhere.
// It stands in for a real distributed-ledger anchor.
type DigestAnchor struct{}

func NewDigestAnchor() *DigestAnchor {
	return &DigestAnchor{}
}

func (a *DigestAnchor) Anchor(_ context.Context, copyrightID, contentHash string, at int64) (string, error) {
	payload, err := json.Marshal(struct {
		CopyrightID string `json:"copyright_id"`
		ContentHash string `json:"content_hash"`
		Timestamp   int64  `json:"timestamp"`
	}{copyrightID, contentHash, at})
	if err != nil {
		return "", err
	}
	digest := sha256.Sum256(payload)
	return hex.EncodeToString(digest[:]), nil
}
