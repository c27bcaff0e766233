package server

import (
	"context"
	"log/slog"
	"os"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/surrealdb/surrealdb.go"

	"github.com/nfrund/gatehouse/internal/auth"
	"github.com/nfrund/gatehouse/internal/config"
	"github.com/nfrund/gatehouse/internal/handlers"
	"github.com/nfrund/gatehouse/internal/logging"
	"github.com/nfrund/gatehouse/internal/pubsub"
	"github.com/nfrund/gatehouse/internal/rendering"
	"github.com/nfrund/gatehouse/internal/validation"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E   *echo.Echo
	DB  *surrealdb.DB
	Cfg *config.Config
	Bus *pubsub.Bus

	loginHandler *handlers.LoginHandler
	homeHandler  *handlers.HomeHandler
}

// New creates a new Server instance, wiring every collaborator of the
// login screen: validator, SurrealDB authenticator, event bus, renderer,
// and handlers.
func New() *Server {
	logging.New()

	cfg, err := config.New()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := auth.NewDB(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	bus := pubsub.NewBus()
	renderer := rendering.NewUniversal()
	validator := validation.New()
	authenticator := auth.NewSurreal(db, cfg.DBNs, cfg.DBDb, cfg.DBAccess)

	loginHandler := handlers.NewLoginHandler(validator, authenticator, bus, renderer)
	homeHandler := handlers.NewHomeHandler(renderer)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7,
		HttpOnly: true,
	}
	e.Use(session.Middleware(store))

	e.Renderer = renderer

	s := &Server{
		E:            e,
		DB:           db,
		Cfg:          cfg,
		Bus:          bus,
		loginHandler: loginHandler,
		homeHandler:  homeHandler,
	}
	s.subscribeAudit()
	return s
}
