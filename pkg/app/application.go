package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/julienschmidt/httprouter"

	"pvzadmin/pkg/config"
	"pvzadmin/pkg/httputil"
	"pvzadmin/pkg/middleware"
)

// RouteRegistrar is implemented by every handler that mounts routes on
// the shared router.
type RouteRegistrar interface {
	RegisterRoutes(*httprouter.Router)
}

// Worker is a background component that must be stopped on shutdown.
type Worker interface {
	Stop()
}

type Application struct {
	cfg     *config.Config
	server  *http.Server
	workers []Worker
}

func NewApplication(cfg *config.Config, handlers ...RouteRegistrar) *Application {
	appRouter := httprouter.New()
	for _, h := range handlers {
		h.RegisterRoutes(appRouter)
	}

	var appHandler http.Handler = appRouter
	appHandler = middleware.ContentTypeValidation(cfg.Log)(appHandler)
	appHandler = middleware.MaxRequestSize(int64(cfg.MaxRequestSize))(appHandler)
	appHandler = middleware.RequestTimeout(cfg.RequestTimeout)(appHandler)

	// Health stays outside the content-type and timeout stack so probes
	// always get a fast answer.
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthCheck)
	mux.HandleFunc("/ready", healthCheck)
	mux.Handle("/", appHandler)

	var rootHandler http.Handler = mux
	rootHandler = middleware.RequestLogging(cfg.Log)(rootHandler)
	rootHandler = middleware.Recovery(cfg.Log)(rootHandler)

	return &Application{
		cfg: cfg,
		server: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      rootHandler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// AddWorker registers a background component for shutdown.
func (a *Application) AddWorker(w Worker) {
	a.workers = append(a.workers, w)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.cfg.Log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	for _, w := range a.workers {
		w.Stop()
	}

	a.cfg.Log.Info("Server stopped gracefully")
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
