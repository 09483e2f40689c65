package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getzep/pdffacts/config"
	"github.com/getzep/pdffacts/pkg/models"
	"github.com/getzep/pdffacts/pkg/server"
	"github.com/getzep/pdffacts/pkg/telemetry"
	"github.com/getzep/pdffacts/pkg/textsource"
)

const shutdownTimeout = 10 * time.Second

// run is the entrypoint for the pdffacts server
func run() {
	cfg, err := config.LoadConfig(cfgFile)
	if err != nil {
		log.Fatalf("Error configuring pdffacts: %s", err)
	}

	handleCLIOptions(cfg)

	log.Infof("Starting pdffacts server version %s", config.VersionString)

	config.SetLogLevel(cfg)
	appState, err := NewAppState(cfg)
	if err != nil {
		log.Fatal(err)
	}

	shutdownTracing, err := telemetry.Setup(context.Background(), cfg)
	if err != nil {
		log.Fatal(err)
	}

	srv := server.Create(appState)
	done := setupSignalHandler(srv, shutdownTracing)

	log.Infof("Listening on: %s", srv.Addr)
	err = srv.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}

	<-done
}

// NewAppState creates an AppState struct from the config file / ENV and initializes the
// text source
func NewAppState(cfg *config.Config) (*models.AppState, error) {
	source, err := textsource.New(cfg)
	if err != nil {
		return nil, err
	}

	log.Info("Using text source: ", cfg.Extraction.Source)

	return &models.AppState{
		TextSource: source,
		Config:     cfg,
	}, nil
}

// handleCLIOptions handles CLI options that don't require the server to run
func handleCLIOptions(cfg *config.Config) {
	if showVersion {
		fmt.Println(config.VersionString)
		os.Exit(0)
	}
	if dumpConfig {
		out, err := cfg.YAML()
		if err != nil {
			log.Fatalf("Error dumping config: %s", err)
		}
		fmt.Print(string(out))
		os.Exit(0)
	}
}

// setupSignalHandler drains in-flight requests and flushes traces on termination. The
// returned channel is closed once shutdown has completed.
func setupSignalHandler(srv *http.Server, shutdownTracing telemetry.ShutdownFunc) <-chan struct{} {
	done := make(chan struct{})
	signalCh := make(chan os.Signal, 1)
	signal.Notify(signalCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer close(done)
		<-signalCh
		log.Info("Shutting down pdffacts server")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Errorf("Error shutting down server: %v", err)
		}
		if err := shutdownTracing(ctx); err != nil {
			log.Errorf("Error flushing traces: %v", err)
		}
	}()
	return done
}
