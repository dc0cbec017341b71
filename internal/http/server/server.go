package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"shortlink/internal/auth"
	"shortlink/internal/config"
	"shortlink/internal/domain/models"
	"shortlink/internal/http/handlers/getdefault"
	"shortlink/internal/http/handlers/link/checkslug"
	"shortlink/internal/http/handlers/link/create"
	"shortlink/internal/http/handlers/link/list"
	"shortlink/internal/http/handlers/link/qrpng"
	"shortlink/internal/http/handlers/link/remove"
	"shortlink/internal/http/handlers/link/restore"
	"shortlink/internal/http/handlers/link/suggestslugs"
	"shortlink/internal/http/handlers/link/update"
	middlewareauth "shortlink/internal/http/handlers/middlewares/auth"
	"shortlink/internal/http/handlers/middlewares/compress"
	middlewarelogger "shortlink/internal/http/handlers/middlewares/logger"
	"shortlink/internal/http/handlers/redirect"
	"shortlink/internal/http/handlers/system/getping"
	linksservice "shortlink/internal/services/links"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=mocks/service_links_mock.go -package=mocks shortlink/internal/http/server ServiceLinks
type ServiceLinks interface {
	List(ctx context.Context, caller models.Identity, personalized, trash bool) ([]models.LinkRecord, error)
	Create(ctx context.Context, caller models.Identity, params linksservice.CreateParams) (models.LinkRecord, error)
	Update(ctx context.Context, caller models.Identity, params linksservice.UpdateParams) (models.LinkRecord, error)
	SoftDelete(ctx context.Context, caller models.Identity, id string) error
	Restore(ctx context.Context, caller models.Identity, id string) error
	CheckSlug(ctx context.Context, slug string) (bool, error)
	Resolve(ctx context.Context, slug string) (models.LinkRecord, error)
	Get(ctx context.Context, slug string) (models.LinkRecord, error)
	PingStorage(ctx context.Context) error
}

type SlugSuggester interface {
	SuggestSlugs(ctx context.Context, originalURL, description string) ([]string, error)
}

type Server struct {
	httpServer  *http.Server
	router      *mux.Router
	log         *zerolog.Logger
	linkService ServiceLinks
	suggester   SlugSuggester
	verifier    auth.Verifier
	cfg         config.Config
}

func NewServer(log *zerolog.Logger, cfg config.Config, svc ServiceLinks, suggester SlugSuggester, verifier auth.Verifier) (*Server, error) {
	if cfg.ServerAddress == "" {
		return nil, errors.New("server address cannot be empty")
	}
	if log == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if svc == nil {
		return nil, errors.New("link service cannot be nil")
	}
	if verifier == nil {
		return nil, errors.New("verifier cannot be nil")
	}

	s := &Server{
		router:      mux.NewRouter(),
		cfg:         cfg,
		log:         log,
		linkService: svc,
		suggester:   suggester,
		verifier:    verifier,
	}

	s.httpServer = &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           s.router,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	s.setupRoutes()
	return s, nil
}

func (s *Server) setupRoutes() {
	s.router.Use(middlewarelogger.MiddlewareLogging(s.log))
	s.router.Use(compress.MiddlewareCompressing())
	s.router.Use(middlewareauth.MiddlewareAuth(s.verifier))

	// Дашборд ходит в /api; что доступно анониму, решает сервис
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/links", list.HandlerListLinks(s.linkService)).Methods("GET")
	api.HandleFunc("/links", create.HandlerCreateLink(s.linkService)).Methods("POST") // 201
	api.HandleFunc("/links", update.HandlerUpdateLink(s.linkService)).Methods("PUT")
	api.HandleFunc("/links", remove.HandlerDeleteLink(s.linkService)).Methods("DELETE")
	api.HandleFunc("/links/restore", restore.HandlerRestoreLink(s.linkService)).Methods("POST")
	api.HandleFunc("/links/qr", qrpng.HandlerLinkQR(s.linkService, s.cfg.BaseURL)).Methods("GET")
	api.HandleFunc("/check-slug", checkslug.HandlerCheckSlug(s.linkService)).Methods("GET")
	api.HandleFunc("/suggest-slugs", suggestslugs.HandlerSuggestSlugs(s.suggester, s.log)).Methods("GET")

	// Публичные маршруты
	s.router.HandleFunc("/ping", getping.HandlerPing(s.linkService, s.log)).Methods("GET")
	s.router.HandleFunc("/{slug}", redirect.HandlerRedirect(s.linkService)).Methods("GET") // 307 / 302
	s.router.HandleFunc("/", getdefault.HandlerGetDefault()).Methods("GET")
}

// Router отдает весь хендлер, удобно для httptest
func (s *Server) Router() http.Handler {
	return s.router
}

func (s *Server) Start(ctx context.Context) error {
	s.log.Info().Str("address", s.cfg.ServerAddress).Msg("Starting server")
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
