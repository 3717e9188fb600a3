package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"promptforge/internal/http/handlers"
	"promptforge/internal/middleware"
)

// Options configures the router middleware stack.
type Options struct {
	Logger          zerolog.Logger
	RateLimitPerMin int
	CORSOrigins     []string
}

func NewRouter(app *handlers.App, opts Options) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(opts.Logger))
	if opts.RateLimitPerMin > 0 {
		r.Use(middleware.RateLimit(opts.RateLimitPerMin, time.Minute))
	}
	if len(opts.CORSOrigins) > 0 {
		r.Use(middleware.CORS(opts.CORSOrigins))
	}

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/prompts", func(r chi.Router) {
		r.Post("/", app.GeneratePrompt)
		r.Get("/", app.ListPrompts)
		r.Post("/enhance", app.EnhancePrompt)
		r.Get("/{id}", app.GetPrompt)
	})

	r.Get("/v1/models", app.Models)
	r.Get("/v1/status", app.EnhancerStatus)

	r.Route("/v1/catalogs", func(r chi.Router) {
		r.Get("/", app.Catalogs)
		r.Get("/{name}", app.CatalogByName)
	})
	r.Get("/v1/textures/{key}/compatible", app.TextureCompatible)

	r.Route("/v1/presets", func(r chi.Router) {
		r.Get("/", app.Presets)
		r.Get("/{name}", app.PresetByName)
	})

	return r
}
