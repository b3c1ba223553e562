package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

// RPCPrefix общий префикс процедур.
const RPCPrefix = "/api/rpc"

// Kind вид процедуры: чтение или изменение.
type Kind string

const (
	KindQuery    Kind = "query"
	KindMutation Kind = "mutation"
)

// Procedure именованная процедура и её обработчик.
type Procedure struct {
	Name    string
	Kind    Kind
	Handler gin.HandlerFunc
}

// Method HTTP метод процедуры.
func (p Procedure) Method() string {
	if p.Kind == KindMutation {
		return http.MethodPost
	}
	return http.MethodGet
}

// Path путь процедуры.
func (p Procedure) Path() string {
	return RPCPrefix + "/" + p.Name
}

// Handlers набор хэндлеров приложения. Seed может быть nil.
type Handlers struct {
	Health    *handlers.HealthHandler
	Profile   *handlers.ProfileHandler
	Artifact  *handlers.ArtifactHandler
	Curator   *handlers.CuratorHandler
	Progress  *handlers.ProgressHandler
	ChangeLog *handlers.ChangeLogHandler
	Theme     *handlers.ThemeHandler
	Media     *handlers.MediaHandler
	WS        *handlers.WSHandler
	Seed      *handlers.SeedHandler
}

// Procedures возвращает таблицу процедур в порядке регистрации.
func Procedures(h *Handlers) []Procedure {
	return []Procedure{
		{Name: "healthcheck", Kind: KindQuery, Handler: h.Health.Procedure},
		{Name: "getUserProfile", Kind: KindQuery, Handler: h.Profile.GetProfile},
		{Name: "getPortfolioArtifacts", Kind: KindQuery, Handler: h.Artifact.List},
		{Name: "getFeaturedArtifacts", Kind: KindQuery, Handler: h.Artifact.ListFeatured},
		{Name: "createPortfolioArtifact", Kind: KindMutation, Handler: h.Artifact.Create},
		{Name: "updatePortfolioArtifact", Kind: KindMutation, Handler: h.Artifact.Update},
		{Name: "createAiCuratorInteraction", Kind: KindMutation, Handler: h.Curator.Create},
		{Name: "getAiCuratorInteractions", Kind: KindQuery, Handler: h.Curator.List},
		{Name: "getCollaborativeSpaces", Kind: KindQuery, Handler: h.Profile.ListSpaces},
		{Name: "getProgressTrackers", Kind: KindQuery, Handler: h.Progress.List},
		{Name: "createProgressTracker", Kind: KindMutation, Handler: h.Progress.Create},
		{Name: "updateProgressTracker", Kind: KindMutation, Handler: h.Progress.Update},
		{Name: "getDailyChangeLogs", Kind: KindQuery, Handler: h.ChangeLog.List},
		{Name: "createDailyChangeLog", Kind: KindMutation, Handler: h.ChangeLog.Create},
		{Name: "getActiveDesignTheme", Kind: KindQuery, Handler: h.Theme.GetActive},
		{Name: "activateDesignTheme", Kind: KindMutation, Handler: h.Theme.Activate},
		{Name: "uploadArtifactMedia", Kind: KindMutation, Handler: h.Media.Upload},
	}
}

// Describe описывает процедуры без обработчиков.
func Describe(procs []Procedure) []dto.ProcedureInfo {
	out := make([]dto.ProcedureInfo, 0, len(procs))
	for _, p := range procs {
		out = append(out, dto.ProcedureInfo{
			Name:   p.Name,
			Kind:   string(p.Kind),
			Method: p.Method(),
			Path:   p.Path(),
		})
	}
	return out
}

func SetupRouter(cfg *config.Config, h *Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.NoRoute(func(c *gin.Context) {
		_ = c.Error(apperror.New(apperror.ErrCodeNotFound, "процедура не найдена"))
	})

	r.GET("/health", h.Health.Health)
	r.StaticFS("/media", http.Dir(cfg.MediaStoragePath))

	api := r.Group("/api")

	if h.Seed != nil && cfg.IsDevelopment() {
		api.POST("/seed", h.Seed.Seed)
	}

	api.GET("/ws/curator", h.WS.Handle)

	procs := Procedures(h)
	catalog := Describe(procs)

	rpc := api.Group("/rpc")
	rpc.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.Envelope{Success: true, Data: catalog})
	})

	mutationLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	for _, p := range procs {
		if p.Kind == KindMutation {
			rpc.POST(p.Name, mutationLimit, p.Handler)
			continue
		}
		rpc.GET(p.Name, p.Handler)
	}

	return r
}
