package server

import (
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/riandyrn/otelchi"

	"github.com/getzep/pdffacts/internal"
	"github.com/getzep/pdffacts/pkg/models"
)

const (
	ReadHeaderTimeout = 5 * time.Second
	RouterName        = "pdffacts"
)

var log = internal.GetLogger()

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	router := setupRouter(appState)
	return &http.Server{
		Addr:              appState.Config.Addr(),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		cors.Handler(cors.Options{
			AllowOriginFunc: func(_ *http.Request, _ string) bool { return true },
			AllowedMethods: []string{
				http.MethodGet,
				http.MethodHead,
				http.MethodPost,
				http.MethodPut,
				http.MethodPatch,
				http.MethodDelete,
				http.MethodConnect,
				http.MethodOptions,
				http.MethodTrace,
			},
			AllowedHeaders:   []string{"*"},
			ExposedHeaders:   []string{RequestIDHeader, versionHeader},
			AllowCredentials: true,
		}),
		httpLogger.Logger("router", log),
		middleware.Recoverer,
		RequestID,
		middleware.RealIP,
		SendVersion,
		middleware.Heartbeat("/healthz"),
	)

	if timeout := appState.Config.Server.RequestTimeout; timeout > 0 {
		router.Use(middleware.Timeout(timeout))
	}

	router.Use(otelchi.Middleware(
		RouterName,
		otelchi.WithChiRoutes(router),
		otelchi.WithRequestMethodInSpanName(true),
	))

	router.Get("/", RootHandler())
	router.Get("/health", HealthHandler())
	router.Post("/analyze-pdf", AnalyzePDFHandler(appState))

	return router
}
