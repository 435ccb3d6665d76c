// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"arcade/internal/delivery/api/middleware"
	"arcade/internal/delivery/api/router/handler"
	"arcade/internal/domain/entity"
	"arcade/internal/infra/ratelimit"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GameHandler    *handler.GameHandler
	MatchHandler   *handler.MatchHandler
	PlayerHandler  *handler.PlayerHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *ratelimit.Limiter
}

// router holds all the handlers that need to be registered.
type router struct {
	gameHandler    *handler.GameHandler
	matchHandler   *handler.MatchHandler
	playerHandler  *handler.PlayerHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *ratelimit.Limiter
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		gameHandler:    params.GameHandler,
		matchHandler:   params.MatchHandler,
		playerHandler:  params.PlayerHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		rateLimiter:    params.RateLimiter,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Per route the order is always authenticate, authorize, validate, handle.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Welcome)

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.rateLimiter.Middleware())

	apiV1.GET("/health", r.healthHandler.Check)

	managers := r.authMiddleware.RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Games are public to read, managed by staff
	gamesGroup := apiV1.Group("/games")
	{
		gamesGroup.GET("", r.gameHandler.ListGames)
		gamesGroup.GET("/:id", r.gameHandler.GetGame)
		gamesGroup.POST("", r.gameHandler.CreateGame,
			r.authMiddleware.Authenticate, managers, middleware.ValidateRequest[handler.CreateGameRequest]())
		gamesGroup.PUT("/:id", r.gameHandler.UpdateGame,
			r.authMiddleware.Authenticate, managers, middleware.ValidateRequest[handler.UpdateGameRequest]())
		gamesGroup.DELETE("/:id", r.gameHandler.DeleteGame,
			r.authMiddleware.Authenticate, managers)
	}

	// Matches are open to any authenticated caller
	matchesGroup := apiV1.Group("/matches")
	matchesGroup.Use(r.authMiddleware.Authenticate)
	{
		matchesGroup.GET("", r.matchHandler.ListMatches)
		matchesGroup.GET("/:id", r.matchHandler.GetMatch)
		matchesGroup.POST("", r.matchHandler.CreateMatch, middleware.ValidateRequest[handler.CreateMatchRequest]())
		matchesGroup.PUT("/:id", r.matchHandler.UpdateMatch, middleware.ValidateRequest[handler.UpdateMatchRequest]())
		matchesGroup.DELETE("/:id", r.matchHandler.DeleteMatch)
	}

	playersGroup := apiV1.Group("/players")
	playersGroup.Use(r.authMiddleware.Authenticate)
	playersGroup.Use(managers)
	{
		playersGroup.GET("", r.playerHandler.ListPlayers)
		playersGroup.GET("/:id", r.playerHandler.GetPlayer)
		playersGroup.POST("", r.playerHandler.CreatePlayer, middleware.ValidateRequest[handler.CreatePlayerRequest]())
		playersGroup.PUT("/:id", r.playerHandler.UpdatePlayer, middleware.ValidateRequest[handler.UpdatePlayerRequest]())
		playersGroup.DELETE("/:id", r.playerHandler.DeletePlayer)
	}
}
