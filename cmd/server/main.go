package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bingo-backend/internal/config"
	"github.com/iliyamo/bingo-backend/internal/database"
	"github.com/iliyamo/bingo-backend/internal/handler"
	"github.com/iliyamo/bingo-backend/internal/qr"
	"github.com/iliyamo/bingo-backend/internal/queue"
	"github.com/iliyamo/bingo-backend/internal/repository"
	"github.com/iliyamo/bingo-backend/internal/router"
	"github.com/iliyamo/bingo-backend/internal/service"
	"github.com/iliyamo/bingo-backend/internal/storage"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer func() { _ = db.Close() }()

	store, err := storage.NewS3Store(context.Background(),
		cfg.S3Endpoint, cfg.S3Region, cfg.S3Bucket, cfg.S3AccessKey, cfg.S3SecretKey)
	if err != nil {
		log.Fatalf("object storage: %v", err)
	}

	users := repository.NewUserRepo(db)
	games := repository.NewGameRepo(db)

	provisioner := service.NewProvisioner(games, qr.NewPNGGenerator(), store, cfg.PublicBaseURL)
	query := service.NewGameQuery(games)

	authH := handler.NewAuthHandler(cfg, users)
	gameH := handler.NewGameHandler(provisioner, query)

	// Redis may be absent in development; the limiter degrades to a no-op.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable, rate limiting disabled")
	}

	// Background consumer recording provisioning events.
	go func() {
		if err := queue.StartProvisionConsumer(); err != nil {
			log.Printf("provision consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, authH, gameH, cfg.JWTSecret, rdb, config.LoadRateLimitConfig())

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
