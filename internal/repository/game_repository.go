package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/bingo-backend/internal/model"
)

type GameRepo struct{ DB *sql.DB }

func NewGameRepo(db *sql.DB) *GameRepo { return &GameRepo{DB: db} }

// Create inserts a game row with qr_code_url left NULL and returns its ID.
// A duplicate title maps to ErrTitleExists via the unique index on title.
func (r *GameRepo) Create(ctx context.Context, title string, ownerID uint64) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO games (title, owner_id) VALUES (?,?)",
		title, ownerID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrTitleExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ExistsByTitle reports whether any game already uses the given title.
// Used as the fast-path uniqueness check before an insert; the unique index
// remains the authority under concurrent creates.
func (r *GameRepo) ExistsByTitle(ctx context.Context, title string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM games WHERE title=? LIMIT 1", title).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetByID fetches a game by id regardless of owner.
func (r *GameRepo) GetByID(ctx context.Context, id uint64) (model.Game, error) {
	var g model.Game
	err := r.DB.QueryRowContext(ctx,
		"SELECT id,title,owner_id,qr_code_url,created_at FROM games WHERE id=? LIMIT 1",
		id).Scan(&g.ID, &g.Title, &g.OwnerID, &g.QRCodeURL, &g.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Game{}, ErrNotFound
	}
	return g, err
}

// ListByOwner returns id/title pairs for all games owned by the user, in
// store order.
func (r *GameRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.GameSummary, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id,title FROM games WHERE owner_id=?", ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.GameSummary, 0)
	for rows.Next() {
		var g model.GameSummary
		if err := rows.Scan(&g.ID, &g.Title); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// SetQRCodeURL records the public URL of the uploaded QR image for a game.
func (r *GameRepo) SetQRCodeURL(ctx context.Context, id uint64, url string) error {
	// No rows-affected check: MySQL reports 0 changed rows when an
	// idempotent re-provision writes the same URL back.
	_, err := r.DB.ExecContext(ctx,
		"UPDATE games SET qr_code_url=? WHERE id=?", url, id)
	return err
}
