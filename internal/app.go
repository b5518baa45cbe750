package internal

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"studynexus/internal/controllers"
	"studynexus/internal/providers"
	"studynexus/internal/scheduling/interfaces"
	"studynexus/internal/services"
	"studynexus/internal/structures"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	WebServer *http.Server

	conf      *structures.Config
	logger    providers.Logger
	scheduler interfaces.SchedulerInterface
	service   services.AccountServiceInterface
	store     interfaces.StoreInterface
}

func NewApp(healthController *controllers.HealthController, scheduler interfaces.SchedulerInterface, service services.AccountServiceInterface, store interfaces.StoreInterface, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) *App {
	// Inner mux: API routes
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Url, route.Handler)
	}

	// Wrap API routes with metrics middleware
	instrumentedAPI := providers.MetricsMiddleware(metrics, apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		conf:      conf,
		logger:    logger,
		scheduler: scheduler,
		service:   service,
		store:     store,
	}
}

// Run restores the persisted flag, starts the scheduler and serves HTTP
// until ctx is cancelled, then shuts down and saves the flag once more.
func (app *App) Run(ctx context.Context) error {
	app.logger.Infof(providers.TypeApp, "Starting %s", app.conf.AppName)
	if err := app.scheduler.Restore(); err != nil {
		app.logger.Errorf(providers.TypeApp, "Restore error: %s", err)
	}

	app.scheduler.Init()

	serverErr := make(chan error, 1)
	go func() {
		app.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s", app.WebServer.Addr)
		if err := app.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		app.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	app.scheduler.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.WebServer.Shutdown(shutdownCtx); err != nil && runErr == nil {
		runErr = err
	}

	app.service.Wait()
	if err := app.scheduler.Persist(); err != nil && runErr == nil {
		runErr = err
	}
	if err := app.store.Close(); err != nil {
		app.logger.Warnf(providers.TypeApp, "Store close error: %s", err)
	}
	if runErr != nil {
		return runErr
	}
	app.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}
