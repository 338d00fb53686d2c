package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bingo-backend/internal/queue"
	"github.com/iliyamo/bingo-backend/internal/repository"
	"github.com/iliyamo/bingo-backend/internal/service"
)

// GameHandler bundles the provisioning pipeline and the query service
// behind the game endpoints.
type GameHandler struct {
	Provisioner *service.Provisioner
	Query       *service.GameQuery
}

func NewGameHandler(p *service.Provisioner, q *service.GameQuery) *GameHandler {
	return &GameHandler{Provisioner: p, Query: q}
}

// ----- DTOs -----

type createGameReq struct {
	Title  string `json:"title"`
	UserID uint64 `json:"userId"`
}

type selectGameReq struct {
	GameID uint64 `json:"gameId"`
}

type gameResp struct {
	ID        uint64 `json:"id"`
	Title     string `json:"title"`
	UserID    uint64 `json:"userId"`
	QRCodeURL string `json:"qrCodeUrl"`
}

// Create runs the provisioning pipeline and returns the game together with
// its entry URL and QR image URL.  A failure after the insert leaves the
// row without a qrCodeUrl; Reprovision can pick it up later.
func (h *GameHandler) Create(c echo.Context) error {
	var req createGameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Title = strings.TrimSpace(req.Title)

	// Render and upload go over the network, so the budget is wider than
	// for plain DB handlers.
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	created, err := h.Provisioner.CreateGame(ctx, req.Title, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrDuplicateTitle):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "that title is already registered"})
		case errors.Is(err, service.ErrMissingField):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "missing userId or title"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create game"})
		}
	}

	// Best effort: a lost event never fails a provisioned game.
	if err := service.PublishGameProvisioned(ctx, queue.GameProvisionedEvent{
		GameID:        created.Game.ID,
		OwnerID:       created.Game.OwnerID,
		Title:         created.Game.Title,
		GameURL:       created.GameURL,
		QRCodeURL:     created.Game.QRCodeURL.String,
		ProvisionedAt: time.Now().UTC().Format(time.RFC3339),
	}); err != nil {
		log.Printf("game-create: publish event failed: %v", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":        created.Game.ID,
		"title":     created.Game.Title,
		"userId":    created.Game.OwnerID,
		"qrCodeUrl": created.Game.QRCodeURL.String,
		"gameUrl":   created.GameURL,
	})
}

// Reprovision re-runs the QR render/upload/update stages for a game whose
// earlier provisioning failed.  Keyed by game id and idempotent, so calling
// it for an already provisioned game simply refreshes the artifact.
func (h *GameHandler) Reprovision(c echo.Context) error {
	var req selectGameReq
	if err := c.Bind(&req); err != nil || req.GameID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "gameId required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Second)
	defer cancel()

	created, err := h.Provisioner.Provision(ctx, req.GameID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to provision game"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":        created.Game.ID,
		"title":     created.Game.Title,
		"userId":    created.Game.OwnerID,
		"qrCodeUrl": created.Game.QRCodeURL.String,
		"gameUrl":   created.GameURL,
	})
}

// Titles lists the authenticated user's games as id/title pairs.
func (h *GameHandler) Titles(c echo.Context) error {
	uid, ok := c.Get("user_id").(uint64)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	games, err := h.Query.ListForOwner(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve titles"})
	}
	return c.JSON(http.StatusOK, games)
}

// Select fetches one game by id for entry.  No ownership check: a QR link
// must work for whoever scans it.
func (h *GameHandler) Select(c echo.Context) error {
	var req selectGameReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	g, err := h.Query.Select(ctx, req.GameID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "Game not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to retrieve game"})
	}

	return c.JSON(http.StatusOK, gameResp{
		ID:        g.ID,
		Title:     g.Title,
		UserID:    g.OwnerID,
		QRCodeURL: g.QRCodeURL.String,
	})
}
