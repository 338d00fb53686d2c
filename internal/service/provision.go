// Package service holds the business logic between the HTTP handlers and
// the leaf adapters: the game provisioning pipeline, the game query
// service and the domain event publisher.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/bingo-backend/internal/model"
	"github.com/iliyamo/bingo-backend/internal/qr"
	"github.com/iliyamo/bingo-backend/internal/repository"
	"github.com/iliyamo/bingo-backend/internal/storage"
)

// ErrDuplicateTitle is returned when a game with the requested title
// already exists.  Handlers translate it to HTTP 400.
var ErrDuplicateTitle = errors.New("title already taken")

// ErrMissingField is returned when title or owner id is absent.
var ErrMissingField = errors.New("missing title or user id")

// GameStore is the persistence surface the pipeline and query service need.
// *repository.GameRepo satisfies it; tests use an in-memory fake.
type GameStore interface {
	Create(ctx context.Context, title string, ownerID uint64) (uint64, error)
	ExistsByTitle(ctx context.Context, title string) (bool, error)
	GetByID(ctx context.Context, id uint64) (model.Game, error)
	ListByOwner(ctx context.Context, ownerID uint64) ([]model.GameSummary, error)
	SetQRCodeURL(ctx context.Context, id uint64, url string) error
}

// ProvisionedGame is the result of a successful pipeline run: the stored
// game plus the entry URL its QR image encodes.
type ProvisionedGame struct {
	Game    model.Game
	GameURL string
}

// Provisioner creates game resources and attaches their QR entry artifact.
// The insert is durable on its own; everything after it can fail and leave
// the row with a NULL qr_code_url, in which case Provision can be re-run
// for that id later.
type Provisioner struct {
	games      GameStore
	qr         qr.Generator
	store      storage.Uploader
	publicBase string
}

func NewProvisioner(games GameStore, gen qr.Generator, up storage.Uploader, publicBase string) *Provisioner {
	return &Provisioner{games: games, qr: gen, store: up, publicBase: publicBase}
}

// CreateGame runs the full pipeline: title uniqueness check, field
// validation, insert, then QR render/upload/update via Provision.  The
// pre-check gives a friendly duplicate error, but the store's unique index
// is the authority — a concurrent create losing the race still surfaces as
// ErrDuplicateTitle from the insert itself.
func (p *Provisioner) CreateGame(ctx context.Context, title string, ownerID uint64) (ProvisionedGame, error) {
	taken, err := p.games.ExistsByTitle(ctx, title)
	if err != nil {
		return ProvisionedGame{}, fmt.Errorf("check title: %w", err)
	}
	if taken {
		return ProvisionedGame{}, ErrDuplicateTitle
	}

	if title == "" || ownerID == 0 {
		return ProvisionedGame{}, ErrMissingField
	}

	id, err := p.games.Create(ctx, title, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrTitleExists) {
			return ProvisionedGame{}, ErrDuplicateTitle
		}
		return ProvisionedGame{}, fmt.Errorf("insert game: %w", err)
	}

	return p.Provision(ctx, id)
}

// Provision generates the QR artifact for an existing game and records its
// URL.  It is idempotent by game id: the storage key and entry URL derive
// from the id alone, and uploading overwrites any previous object, so it is
// safe to re-run for rows left unprovisioned by an earlier failure.
func (p *Provisioner) Provision(ctx context.Context, gameID uint64) (ProvisionedGame, error) {
	g, err := p.games.GetByID(ctx, gameID)
	if err != nil {
		return ProvisionedGame{}, fmt.Errorf("load game: %w", err)
	}

	gameURL := fmt.Sprintf("%s/game/%d", p.publicBase, gameID)

	png, err := p.qr.Render(gameURL)
	if err != nil {
		return ProvisionedGame{}, fmt.Errorf("render qr image: %w", err)
	}

	key := fmt.Sprintf("game-%d.png", gameID)
	qrURL, err := p.store.Upload(ctx, key, png, "image/png")
	if err != nil {
		return ProvisionedGame{}, fmt.Errorf("upload qr image: %w", err)
	}

	if err := p.games.SetQRCodeURL(ctx, gameID, qrURL); err != nil {
		return ProvisionedGame{}, fmt.Errorf("save qr url: %w", err)
	}

	g.QRCodeURL.String = qrURL
	g.QRCodeURL.Valid = true
	return ProvisionedGame{Game: g, GameURL: gameURL}, nil
}
