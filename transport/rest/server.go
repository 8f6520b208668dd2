package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/rocketscienceinc/counter-backend/internal/metrics"
)

// requestTimeout stays below writeTimeout so a cancelled handler can still answer 504.
const (
	requestTimeout = 8 * time.Second
	writeTimeout   = 10 * time.Second
)

type Options struct {
	Port           string
	RateLimit      int
	AllowedOrigins []string
	JoinableLimit  int
}

type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
}

func New(logger *slog.Logger, options Options, auth authService, games gameManager, m *metrics.Metrics) *Server {
	return &Server{
		logger: logger.With("component", "rest"),
		httpServer: &http.Server{
			Addr:         ":" + options.Port,
			Handler:      NewRouter(logger, options, auth, games, m),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: writeTimeout,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// NewRouter - the full route table with middleware, usable without a listener.
func NewRouter(logger *slog.Logger, options Options, auth authService, games gameManager, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: options.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// to protect the api from request floods
	if options.RateLimit > 0 {
		r.Use(httprate.LimitByIP(options.RateLimit, time.Minute))
	}

	ping := NewPingHandler()
	authHandlers := NewAuthHandler(logger, auth)
	gameHandlers := NewGameHandler(logger, games, options.JoinableLimit)

	r.Get("/ping", ping.PingHandler)
	r.Method(http.MethodGet, "/metrics", m.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandlers.SignUp)
		r.Post("/signin", authHandlers.SignIn)

		r.Group(func(r chi.Router) {
			r.Use(authenticate(auth))
			r.Post("/signout", authHandlers.SignOut)
		})
	})

	r.Route("/games", func(r chi.Router) {
		r.Use(authenticate(auth))

		r.Get("/lobby", gameHandlers.Lobby)
		r.Get("/active", gameHandlers.Active)
		r.Get("/joinable", gameHandlers.Joinable)
		r.Post("/", gameHandlers.Create)
		r.Get("/{id}", gameHandlers.Get)
		r.Post("/{id}/join", gameHandlers.Join)
		r.Post("/{id}/moves", gameHandlers.Move)
	})

	return r
}

func (that *Server) Start() error {
	that.logger.Info("Starting HTTP server", "addr", that.httpServer.Addr)

	if err := that.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	return nil
}
