package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // the Echo web framework handles routing
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/bingo-backend/internal/config"
	"github.com/iliyamo/bingo-backend/internal/handler"
	"github.com/iliyamo/bingo-backend/internal/middleware"
)

// RegisterRoutes registers routes that do not belong to the API surface.
// Currently it exposes only a health check, used by load balancers and
// monitoring to verify the service is up.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires the /api/auth group the frontend speaks to.  The paths
// match the original client exactly, including which routes carry the JWT
// middleware: create and selectgame are reachable without a token because
// scanned QR links must resolve for players who never logged in.
func RegisterAPI(e *echo.Echo, a *handler.AuthHandler, g *handler.GameHandler, jwtSecret string, rdb *redis.Client, rl config.RateLimitConfig) {
	api := e.Group("/api/auth")

	// Credential endpoints sit behind the token-bucket limiter to slow
	// down brute-force attempts.
	limited := middleware.NewTokenBucket(rl, rdb)
	api.POST("/signup", a.Signup, limited)
	api.POST("/login", a.Login, limited)
	api.POST("/logout", a.Logout)

	// Game entry points used by scanned QR links.
	api.POST("/create", g.Create)
	api.POST("/selectgame", g.Select)

	// Protected endpoints require a valid Bearer token.
	guard := middleware.JWTAuth(jwtSecret)
	api.GET("/user", a.Me, guard)
	api.GET("/title", g.Titles, guard)
	api.POST("/provision", g.Reprovision, guard)
}
