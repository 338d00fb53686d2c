package model

import (
	"database/sql"
	"time"
)

// Game mirrors the 'games' table.  QRCodeURL stays NULL until the
// provisioning pipeline has uploaded the entry QR image; a NULL value marks
// a row that still needs (re-)provisioning.
type Game struct {
	ID        uint64
	Title     string
	OwnerID   uint64
	QRCodeURL sql.NullString
	CreatedAt time.Time
}

// GameSummary is the projection returned when listing a user's games.
type GameSummary struct {
	ID    uint64 `json:"id"`
	Title string `json:"title"`
}
