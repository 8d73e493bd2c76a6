package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/net/netutil"

	"scanhelper/internal/adapters/files"
	httpadapter "scanhelper/internal/adapters/http"
	"scanhelper/internal/adapters/manifest"
	pg "scanhelper/internal/adapters/postgres"
	"scanhelper/internal/config"
	"scanhelper/internal/ports"
	"scanhelper/internal/services/sessions"
	"scanhelper/internal/workers/scanwriter"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("warning: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := openStorage(ctx, cfg)
	if err != nil {
		log.Fatalf("storage: %v", err)
	}
	defer store.Close()

	queue := scanwriter.New(store, cfg.ScanQueueSize, cfg.ScanWriteRetries)
	queue.Run(ctx, cfg.ScanWriters)
	log.Printf("scan writers started: %d", cfg.ScanWriters)

	hub := httpadapter.NewHub()
	go hub.Run(ctx)

	loader := manifest.New()
	svc := sessions.New(loader, loader, store, store, queue)

	_, port, err := net.SplitHostPort(cfg.ListenAddr)
	if err != nil {
		port = cfg.ListenAddr
	}
	srv := httpadapter.New(svc, store, hub, httpadapter.Options{
		MaxUploadBytes: int64(cfg.MaxUploadMB) << 20,
		Port:           port,
	})
	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	if cfg.MaxConns > 0 {
		ln = netutil.LimitListener(ln, cfg.MaxConns)
	}
	httpSrv := &http.Server{Handler: r, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.Serve(ln) }()
	log.Printf("listening on %s (storage=%s)", cfg.ListenAddr, cfg.Storage)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server error: %v", fmt.Errorf("serve: %w", err))
		}
	}

	shutdownCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
	defer stop()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	cancel()
	queue.Wait()
	if dropped, failed := queue.Stats(); dropped+failed > 0 {
		log.Printf("scan writer: %d dropped, %d failed", dropped, failed)
	}
}

func openStorage(ctx context.Context, cfg config.Config) (ports.Storage, error) {
	switch cfg.Storage {
	case config.StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, errors.New("DATABASE_URL is required for postgres storage")
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("db connect: %w", err)
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, err
		}
		return db, nil
	default:
		return files.Open(cfg.DataDir)
	}
}
