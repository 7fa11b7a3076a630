package http

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"

	applog "finegems/internal/log"
	"finegems/internal/middleware/security"
	"finegems/internal/middleware/trace"
	"finegems/internal/services"
	appweb "finegems/web"
)

const staticMaxAge = 3600

type Server struct {
	http.Server
	templates *template.Template
	ledger    *services.LedgerService
	logger    *applog.Logger
}

// NewServer configures routes and templates, returning a ready-to-run http.Server.
func NewServer(addr string, ledger *services.LedgerService, logger *applog.Logger) (*Server, error) {
	if logger == nil {
		logger = applog.New(applog.DefaultConfig())
	}

	t, err := template.ParseFS(appweb.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	static, err := fs.Sub(appweb.StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("mount static assets: %w", err)
	}

	s := &Server{
		Server:    http.Server{Addr: addr},
		templates: t,
		ledger:    ledger,
		logger:    logger.WithComponent(applog.ComponentHTTP),
	}

	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet, http.MethodHead)
	r.HandleFunc("/transaction", s.handleAddTransaction).Methods(http.MethodPost)
	r.HandleFunc("/transaction/{id}/delete", s.handleDeleteTransaction).Methods(http.MethodPost)
	r.HandleFunc("/budget", s.handleSetBudget).Methods(http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	r.HandleFunc("/readyz", s.handleReady).Methods(http.MethodGet)
	r.PathPrefix("/static/").Handler(
		security.StaticAssetMiddleware(staticMaxAge)(
			http.StripPrefix("/static/", http.FileServer(http.FS(static))),
		),
	).Methods(http.MethodGet, http.MethodHead)

	// Wrap the whole router so 404 and 405 responses are traced as well.
	var h http.Handler = r
	h = security.NewHeadersMiddleware(security.DefaultHeadersConfig()).Middleware(h)
	h = trace.NewMiddleware(logger, security.ClientIP).Middleware(h)
	s.Handler = h

	return s, nil
}
