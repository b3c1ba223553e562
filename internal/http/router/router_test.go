package router

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/ws"
)

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

func testConfig(t *testing.T) *config.Config {
	return &config.Config{
		Env:              "test",
		MediaStoragePath: t.TempDir(),
		AllowedOrigins:   []string{"http://localhost:5173"},
		RateLimitLimit:   2,
		RateLimitPeriod:  time.Minute,
	}
}

func testHandlers() *Handlers {
	hub := ws.NewHub(context.Background())
	return &Handlers{
		Health:  handlers.NewHealthHandler(okPinger{}),
		Curator: handlers.NewCuratorHandler(service.NewCuratorService(nil, hub)),
		Theme:   handlers.NewThemeHandler(service.NewThemeService(nil)),
		WS:      handlers.NewWSHandler(hub, nil),
	}
}

func TestProcedures_KindsAndPaths(t *testing.T) {
	infos := Describe(Procedures(&Handlers{}))

	byName := make(map[string]dto.ProcedureInfo, len(infos))
	for _, info := range infos {
		byName[info.Name] = info
	}
	require.Len(t, byName, len(infos), "имена процедур должны быть уникальны")

	assert.Equal(t, dto.ProcedureInfo{
		Name: "getPortfolioArtifacts", Kind: "query", Method: http.MethodGet, Path: "/api/rpc/getPortfolioArtifacts",
	}, byName["getPortfolioArtifacts"])
	assert.Equal(t, dto.ProcedureInfo{
		Name: "createAiCuratorInteraction", Kind: "mutation", Method: http.MethodPost, Path: "/api/rpc/createAiCuratorInteraction",
	}, byName["createAiCuratorInteraction"])

	for _, name := range []string{
		"healthcheck", "getUserProfile", "getFeaturedArtifacts", "createPortfolioArtifact", "updatePortfolioArtifact",
		"getAiCuratorInteractions", "getCollaborativeSpaces", "getProgressTrackers", "createProgressTracker",
		"updateProgressTracker", "getDailyChangeLogs", "createDailyChangeLog", "getActiveDesignTheme",
		"activateDesignTheme", "uploadArtifactMedia",
	} {
		assert.Contains(t, byName, name)
	}
}

func TestSetupRouter_ListsProcedures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testConfig(t), testHandlers())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rpc", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Success bool                `json:"success"`
		Data    []dto.ProcedureInfo `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Success)
	assert.Len(t, env.Data, len(Procedures(&Handlers{})))
}

func TestSetupRouter_MethodMismatchAndUnknown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testConfig(t), testHandlers())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rpc/createAiCuratorInteraction", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rpc/deleteEverything", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestSetupRouter_HealthAndRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testConfig(t), testHandlers())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rpc/healthcheck", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestSetupRouter_MutationsAreRateLimited(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := SetupRouter(testConfig(t), testHandlers())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/rpc/activateDesignTheme", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		r.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}

	assert.Equal(t, []int{http.StatusBadRequest, http.StatusBadRequest, http.StatusTooManyRequests}, codes)
}

func TestSetupRouter_SeedOnlyInDevelopment(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := testHandlers()
	h.Seed = handlers.NewSeedHandler(nil, "missing.yaml")

	r := SetupRouter(testConfig(t), h)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/seed", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
