package domain

import (
	"context"
	"time"
)

type Song struct {
	ID        string
	ArtistID  string
	Title     string
	Genre     string
	AudioURL  string
	CreatedAt time.Time
}

type SongRepository interface {
	GetSongByID(ctx context.Context, id string) (*Song, error)
	CreateSong(ctx context.Context, song *Song) error
}
