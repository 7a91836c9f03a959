package models

import "time"

type SongModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	ArtistID  string `gorm:"type:uuid;index"`
	Title     string
	Genre     string
	AudioURL  string
	CreatedAt time.Time
}
