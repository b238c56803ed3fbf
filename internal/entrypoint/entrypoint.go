package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/demo"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
	"github.com/mrlokans/bookshelf/internal/scheduler"
	"github.com/mrlokans/bookshelf/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := cfg.ShutdownTimeout()

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Stop background jobs before the listener goes away
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

// Components is everything Run wires together, exposed so the wiring can be
// checked without starting a listener.
type Components struct {
	Handle    *services.StoreHandle
	Router    *gin.Engine
	Scheduler *scheduler.DemoResetScheduler
}

// Build opens the store and wires the router and, in demo mode, the seed
// data and reset scheduler. The scheduler is returned unstarted.
func Build(cfg *config.Config, version string) (*Components, error) {
	handle, err := services.OpenStore(cfg.Store.Backend, cfg.Database)
	if err != nil {
		return nil, err
	}

	var demoMiddleware *demo.Middleware
	var resetScheduler *scheduler.DemoResetScheduler
	if cfg.Demo.Enabled {
		log.Printf("Demo mode enabled - write operations will be blocked")
		demoMiddleware = demo.NewMiddleware(true)

		seed, err := demo.LoadSeed(cfg.Demo.SeedPath)
		if err != nil {
			handle.Close()
			return nil, fmt.Errorf("failed to load demo seed: %w", err)
		}
		demo.Reset(handle.Store, seed)

		if cfg.Demo.ResetSchedule != "" {
			resetScheduler = scheduler.NewDemoResetScheduler(handle.Store, seed, cfg.Demo.ResetSchedule)
		}
	}

	routerCfg := http_controllers.RouterConfig{
		Store:           handle.Store,
		Backend:         string(handle.Backend),
		DefaultPageSize: cfg.Pagination.DefaultPageSize,
		MaxPageSize:     cfg.Pagination.MaxPageSize,
		Version:         version,
		DemoMiddleware:  demoMiddleware,
	}
	// A nil *database.Database must not end up in the interface
	if handle.DB != nil {
		routerCfg.Database = handle.DB
	}

	return &Components{
		Handle:    handle,
		Router:    http_controllers.NewRouter(routerCfg),
		Scheduler: resetScheduler,
	}, nil
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	components, err := Build(cfg, version)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}
	defer func() {
		if err := components.Handle.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	schedulerCtx, schedulerCancel := context.WithCancel(context.Background())
	defer schedulerCancel()

	if components.Scheduler != nil {
		if err := components.Scheduler.Start(schedulerCtx); err != nil {
			log.Printf("WARNING: Failed to start demo reset scheduler: %v", err)
		}
	}

	onShutdown := func(ctx context.Context) {
		if components.Scheduler != nil {
			components.Scheduler.Stop()
		}
		schedulerCancel()
	}

	Serve(components.Router, cfg, onShutdown)
}
