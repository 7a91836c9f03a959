package domain

import "context"

// FingerprintProvider derives an audio identity digest for a song. The
// current implementation hashes the audio URL plus a timestamp; real
// content analysis can be swapped in behind this interface.
type FingerprintProvider interface {
	Fingerprint(ctx context.Context, song *Song, at int64) (string, error)
}

// LedgerAnchorProvider produces the anchoring hash stored with a
// registration. The shipped implementation is a digest stand-in; no
// distributed ledger write occurs.
type LedgerAnchorProvider interface {
	Anchor(ctx context.Context, copyrightID, contentHash string, at int64) (string, error)
}
