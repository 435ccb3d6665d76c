package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"arcade/config"
	apimiddleware "arcade/internal/delivery/api/middleware"
	"arcade/internal/delivery/api/router"
	"arcade/internal/delivery/api/router/handler"
	"arcade/internal/domain/entity"
	"arcade/internal/infra/auth"
	"arcade/internal/infra/docstore/memory"
	"arcade/internal/infra/persistence/document"
	"arcade/internal/infra/pubsub"
	"arcade/internal/infra/ratelimit"
	"arcade/internal/usecase/impl"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type testServer struct {
	t      *testing.T
	server http.Handler
	tokens *auth.JWTService
}

// newTestServer wires the full pipeline over the in-memory document store.
func newTestServer(t *testing.T) *testServer {
	cfg := &config.Config{
		Auth: &config.AuthConfig{Provider: "jwt", Secret: "test-secret", Issuer: "arcade-test"},
	}
	cfg.Env.Version = "test"
	cfg.HTTP.MaxRequestBodySize = "100KB"

	logger := slog.Default()
	tokens, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{Config: cfg, Logger: logger})
	require.NoError(t, err)

	repo := document.NewDocumentRepository(memory.New(), logger)

	routerParams := router.RouterParams{
		GameHandler: handler.NewGameHandler(handler.GameHandlerParams{
			GameUC: impl.NewGameService(impl.GameServiceParams{Repo: repo, Publisher: publisher, Logger: logger}),
			Logger: logger,
		}),
		MatchHandler: handler.NewMatchHandler(handler.MatchHandlerParams{
			MatchUC: impl.NewMatchService(impl.MatchServiceParams{Repo: repo, Publisher: publisher, Logger: logger}),
			Logger:  logger,
		}),
		PlayerHandler: handler.NewPlayerHandler(handler.PlayerHandlerParams{
			PlayerUC: impl.NewPlayerService(impl.PlayerServiceParams{Repo: repo, Publisher: publisher, Logger: logger}),
			Logger:   logger,
		}),
		HealthHandler:  handler.NewHealthHandler(cfg),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{Verifier: tokens, Logger: logger}),
		RateLimiter:    &ratelimit.Limiter{},
	}

	return &testServer{t: t, server: newEcho(cfg, logger, routerParams), tokens: tokens}
}

func (s *testServer) token(role entity.Role) string {
	s.t.Helper()

	token, err := s.tokens.Issue(entity.Identity{Subject: "user-" + role.String(), Role: role}, time.Hour)
	require.NoError(s.t, err)

	return token
}

func (s *testServer) do(method, target, token, body string) (int, envelope) {
	s.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	var env envelope
	require.NoError(s.t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec.Code, env
}

func TestServer_CreateGame(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(http.MethodPost, "/api/v1/games", s.token(entity.RoleAdmin),
		`{"name":"Space Invaders","description":"Classic arcade shooter","modes":"Single Player"}`)

	require.Equal(t, http.StatusCreated, status)
	assert.True(t, env.Success)
	assert.Equal(t, "Game created successfully", env.Message)

	var game entity.Game
	require.NoError(t, json.Unmarshal(env.Data, &game))
	assert.NotEmpty(t, game.ID)

	// Reads are public
	status, env = s.do(http.MethodGet, "/api/v1/games/"+game.ID, "", "")
	require.Equal(t, http.StatusOK, status)

	var fetched entity.Game
	require.NoError(t, json.Unmarshal(env.Data, &fetched))
	assert.Equal(t, game, fetched)
}

func TestServer_UpdatePlayerMergesFields(t *testing.T) {
	s := newTestServer(t)
	manager := s.token(entity.RoleManager)

	status, env := s.do(http.MethodPost, "/api/v1/players", manager,
		`{"username":"ace","achievements":"first blood","totalGamesPlayed":4}`)
	require.Equal(t, http.StatusCreated, status)

	var created entity.Player
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env = s.do(http.MethodPut, "/api/v1/players/"+created.ID, manager, `{"totalGamesPlayed":5}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Player updated successfully", env.Message)

	var updated entity.Player
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, entity.Player{
		ID:               created.ID,
		Username:         "ace",
		Achievements:     "first blood",
		TotalGamesPlayed: 5,
	}, updated)

	// Repeating the same update changes nothing
	_, env = s.do(http.MethodPut, "/api/v1/players/"+created.ID, manager, `{"totalGamesPlayed":5}`)
	var again entity.Player
	require.NoError(t, json.Unmarshal(env.Data, &again))
	assert.Equal(t, updated, again)
}

func TestServer_GetMissingMatch(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(http.MethodGet, "/api/v1/matches/does-not-exist", s.token(entity.RolePlayer), "")

	assert.Equal(t, http.StatusNotFound, status)
	assert.False(t, env.Success)
	require.NotNil(t, env.Error)
	assert.Equal(t, "MATCH_NOT_FOUND", env.Error.Code)
}

func TestServer_UnauthenticatedWrite(t *testing.T) {
	s := newTestServer(t)

	// Invalid body too: authentication must fail first
	status, env := s.do(http.MethodPost, "/api/v1/games", "", `{}`)

	assert.Equal(t, http.StatusUnauthorized, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "UNAUTHORIZED", env.Error.Code)

	status, env = s.do(http.MethodPost, "/api/v1/matches", "not-a-jwt", `{"gameId":"g","playerId":"p","score":1}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid or expired token", env.Message)
}

func TestServer_PlayerCannotDeletePlayers(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(http.MethodPost, "/api/v1/players", s.token(entity.RoleAdmin), `{"username":"ace"}`)
	require.Equal(t, http.StatusCreated, status)

	var created entity.Player
	require.NoError(t, json.Unmarshal(env.Data, &created))

	status, env = s.do(http.MethodDelete, "/api/v1/players/"+created.ID, s.token(entity.RolePlayer), "")
	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	// Still there
	status, _ = s.do(http.MethodGet, "/api/v1/players/"+created.ID, s.token(entity.RoleAdmin), "")
	assert.Equal(t, http.StatusOK, status)
}

func TestServer_MatchLifecycle(t *testing.T) {
	s := newTestServer(t)
	player := s.token(entity.RolePlayer)

	status, env := s.do(http.MethodPost, "/api/v1/matches", player, `{"gameId":"g1","playerId":"p1","score":300}`)
	require.Equal(t, http.StatusCreated, status)

	var match entity.Match
	require.NoError(t, json.Unmarshal(env.Data, &match))
	assert.False(t, match.Timestamp.IsZero())

	status, env = s.do(http.MethodDelete, "/api/v1/matches/"+match.ID, player, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Match successfully deleted", env.Message)
	assert.JSONEq(t, "null", string(env.Data))

	status, _ = s.do(http.MethodDelete, "/api/v1/matches/"+match.ID, player, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestServer_ValidationRunsAfterAuthorization(t *testing.T) {
	s := newTestServer(t)

	// A player is rejected by role before the invalid body is looked at
	status, env := s.do(http.MethodPost, "/api/v1/games", s.token(entity.RolePlayer), `{"name":""}`)
	assert.Equal(t, http.StatusForbidden, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)

	status, env = s.do(http.MethodPost, "/api/v1/games", s.token(entity.RoleAdmin), `{"name":""}`)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestServer_UnknownRoute(t *testing.T) {
	s := newTestServer(t)

	status, env := s.do(http.MethodGet, "/api/v1/tournaments", "", "")

	assert.Equal(t, http.StatusNotFound, status)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestServer_Health(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	s.server.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "OK", body.Status)
	assert.Equal(t, "test", body.Version)
}
