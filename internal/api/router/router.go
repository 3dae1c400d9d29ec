package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/smartsites-digital/leadchat/internal/http/middleware"
	"github.com/smartsites-digital/leadchat/internal/leads"
	"github.com/smartsites-digital/leadchat/internal/webchat"
	"github.com/smartsites-digital/leadchat/pkg/logging"
)

// Config holds router configuration.
type Config struct {
	Logger             *logging.Logger
	ChatHandler        *webchat.Handler
	LeadsHandler       *leads.Handler
	MetricsHandler     http.Handler
	AdminAuthSecret    string
	CORSAllowedOrigins []string
	RateLimitPerMin    int
}

// New creates the Chi router with all routes configured.
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	// Public widget API. Rate limited per IP since it is unauthenticated.
	r.Group(func(public chi.Router) {
		if cfg.RateLimitPerMin > 0 {
			public.Use(httpmiddleware.RateLimit(cfg.RateLimitPerMin))
		}
		public.Route("/chat", func(r chi.Router) {
			r.Post("/start", cfg.ChatHandler.HandleStart)
			r.Post("/message", cfg.ChatHandler.HandleMessage)
			r.Post("/select", cfg.ChatHandler.HandleSelect)
			r.Get("/state", cfg.ChatHandler.HandleState)
			r.Get("/history", cfg.ChatHandler.HandleHistory)
			r.Get("/ws", cfg.ChatHandler.HandleWebSocket)
		})
		public.Post("/leads/web", cfg.LeadsHandler.CreateWebLead)
	})

	// Admin API, JWT protected.
	r.Group(func(admin chi.Router) {
		admin.Use(httpmiddleware.AdminJWT(cfg.AdminAuthSecret))
		admin.Route("/admin/leads", func(r chi.Router) {
			r.Get("/", cfg.LeadsHandler.ListLeads)
			r.Get("/{leadID}", cfg.LeadsHandler.GetLead)
		})
	})

	return r
}
