package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"fcd/internal/catalog/interfaces"
	"fcd/internal/controllers"
	"fcd/internal/providers"
	"fcd/internal/structures"
)

type App struct {
	WebServer *http.Server
}

func NewApp(healthController *controllers.HealthController, scheduler interfaces.SchedulerInterface, conf *structures.Config, logger providers.Logger, routers *Routers, sessions providers.SessionProviderInterface, metrics providers.MetricsProviderInterface) (*App, error) {
	// Inner mux: catalog routes, guarded by the session check.
	apiMux := http.NewServeMux()
	for _, route := range routers.Api.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}
	guardedAPI := providers.AuthMiddleware(conf, sessions, apiMux)

	// Auth routes sit next to the guarded API so clients can obtain a
	// session in the first place.
	serviceMux := http.NewServeMux()
	for _, route := range routers.Auth.GetRoutes() {
		serviceMux.Handle(route.Url, route.Handler)
	}
	serviceMux.Handle("/", guardedAPI)

	instrumented := providers.MetricsMiddleware(metrics, serviceMux)

	// Outer mux: infrastructure + instrumented API.
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumented)

	logger.Infof(providers.TypeApp, "Starting %s", conf.AppName)
	if err := scheduler.Restore(); err != nil {
		logger.Errorf(providers.TypeApp, "Restore error: %s", err)
	}

	app := &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", conf.WebServer.Host, conf.WebServer.Port)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		return nil, fmt.Errorf("server error: %w", err)
	}

	scheduler.Stop()

	if err := scheduler.Persist(); err != nil {
		logger.Errorf(providers.TypeApp, "Final persist failed: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.WebServer.Shutdown(ctx); err != nil {
		logger.Errorf(providers.TypeApp, "Server shutdown error: %s", err)
	}

	logger.Infof(providers.TypeApp, "Stopped")
	return app, nil
}
