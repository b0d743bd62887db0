// Package main is the entry point for the SmartPress page composition
// server. It loads configuration, wires the store federation and
// renderer, and serves HTTP with SIGHUP-triggered graceful restarts —
// or, given --render-file/--render-from-store, renders once and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smartpress/internal/cache"
	"smartpress/internal/config"
	"smartpress/internal/httpapi"
	"smartpress/internal/model"
	"smartpress/internal/render"
	"smartpress/internal/restart"
	"smartpress/internal/store"
	"smartpress/internal/tmpl"

	"gopkg.in/yaml.v3"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath      = flag.String("config", "config.yaml", "path to the YAML configuration file")
		renderFile      = flag.String("render-file", "", "render a single page definition file and print the result, then exit")
		renderFromStore = flag.String("render-from-store", "", "render a single qualified store path (store/page) and print the result, then exit")
		listenOverride  = flag.String("listen", "", "override server.host:port from the config file")
		verbose         = flag.Bool("verbose", false, "enable debug-level logging")
	)
	flag.Parse()

	logLevel := slog.LevelInfo
	if *verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	cfgManager := config.NewManager()
	if err := cfgManager.Load(*configPath); err != nil {
		slog.Error("failed to load configuration", "error", err)
		return 1
	}

	federation, renderer, err := buildCore(cfgManager)
	if err != nil {
		slog.Error("failed to build rendering core", "error", err)
		return 1
	}
	defer federation.Close()

	if *renderFile != "" || *renderFromStore != "" {
		return runOnce(federation, renderer, cfgManager.Current(), *renderFile, *renderFromStore)
	}

	return runServer(cfgManager, *configPath, *listenOverride, federation, renderer)
}

// buildCore constructs a fresh store federation and renderer from the
// current configuration — used both at startup and on every restart
// iteration, since the federation is read-only after construction for a
// given restart cycle.
func buildCore(cfgManager *config.Manager) (*store.Federation, *render.Renderer, error) {
	cfg := cfgManager.Current()

	federation, err := store.NewFederation(cfg.Stores)
	if err != nil {
		return nil, nil, fmt.Errorf("build store federation: %w", err)
	}

	cacheHandle := cache.NewHandle()
	if cfg.Cache != nil {
		if err := cacheHandle.SetCache(cfg.Cache.Backend, cfg.Cache.URL); err != nil {
			federation.Close()
			return nil, nil, fmt.Errorf("configure cache backend: %w", err)
		}
	}

	renderer := render.NewRenderer(federation, tmpl.NewEnv(), cacheHandle)
	return federation, renderer, nil
}

// runOnce renders a single page from a file or a qualified store path
// and prints the full HTML document to stdout.
func runOnce(federation *store.Federation, renderer *render.Renderer, cfg *model.Config, renderFile, renderFromStore string) int {
	ctx := context.Background()

	var page *model.Page
	switch {
	case renderFile != "":
		loaded, err := loadPageFile(renderFile)
		if err != nil {
			slog.Error("failed to load page file", "path", renderFile, "error", err)
			return 1
		}
		page = loaded
	case renderFromStore != "":
		loaded, err := federation.LoadPageDefinition(ctx, renderFromStore)
		if err != nil {
			slog.Error("failed to load page from store", "path", renderFromStore, "error", err)
			return 1
		}
		page = loaded
	}

	page.Fix()
	rp, err := renderer.RenderPage(ctx, page, cfg.Debug)
	if err != nil {
		slog.Error("render failed", "error", err)
		return 1
	}

	fmt.Println(rp.RenderFullHTMLPage())
	return 0
}

func runServer(cfgManager *config.Manager, configPath, listenOverride string, federation *store.Federation, renderer *render.Renderer) int {
	if err := cfgManager.Watch(configPath); err != nil {
		slog.Warn("config hot reload disabled", "error", err)
	}
	defer cfgManager.Close()

	addr := cfgManager.Current().Addr()
	if listenOverride != "" {
		addr = listenOverride
	}

	restartMgr := restart.NewManager(addr)
	restartMgr.EnableRestartOnSignal(syscall.SIGHUP)

	currentFederation := federation
	currentRenderer := renderer

	serverFn := func(ctx context.Context, addr string, shutdown <-chan struct{}) error {
		server := httpapi.NewServer(currentFederation, currentRenderer, cfgManager)
		httpServer := &http.Server{
			Addr:         addr,
			Handler:      httpapi.NewRouter(server),
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			slog.Info("server listening", "addr", addr)
			if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
				return
			}
			errCh <- nil
		}()

		select {
		case <-shutdown:
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("graceful shutdown: %w", err)
			}
			return nil
		case err := <-errCh:
			return err
		}
	}

	reload := func() error {
		if err := cfgManager.Load(configPath); err != nil {
			return err
		}
		newFederation, newRenderer, err := buildCore(cfgManager)
		if err != nil {
			return err
		}
		currentFederation.Close()
		currentFederation = newFederation
		currentRenderer = newRenderer
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		restartMgr.Shutdown()
	}()

	if err := restartMgr.RunWithRestart(context.Background(), serverFn, reload); err != nil {
		slog.Error("server stopped with error", "error", err)
		return 1
	}
	return 0
}

func loadPageFile(path string) (*model.Page, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var page model.Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
