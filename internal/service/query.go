package service

import (
	"context"

	"github.com/iliyamo/bingo-backend/internal/model"
)

// GameQuery serves the read side: the title list a user sees after login
// and the single-game lookup used when entering a game.
type GameQuery struct {
	games GameStore
}

func NewGameQuery(games GameStore) *GameQuery {
	return &GameQuery{games: games}
}

// ListForOwner returns id/title pairs for the owner's games in store order.
func (q *GameQuery) ListForOwner(ctx context.Context, ownerID uint64) ([]model.GameSummary, error) {
	return q.games.ListByOwner(ctx, ownerID)
}

// Select fetches one game by id regardless of owner.  repository.ErrNotFound
// passes through for the handler to map to 404.
func (q *GameQuery) Select(ctx context.Context, gameID uint64) (model.Game, error) {
	return q.games.GetByID(ctx, gameID)
}
