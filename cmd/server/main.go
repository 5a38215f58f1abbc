package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/neshama/memorial/internal/http/health"
	"github.com/neshama/memorial/internal/http/v1/routes"
	"github.com/neshama/memorial/internal/platform/auth"
	"github.com/neshama/memorial/internal/platform/firebase"
	"github.com/neshama/memorial/internal/platform/kv"
	applog "github.com/neshama/memorial/internal/platform/logging"
	appmiddleware "github.com/neshama/memorial/internal/platform/middleware"
	"github.com/neshama/memorial/internal/platform/respond"
	memorialsvc "github.com/neshama/memorial/internal/service/memorial"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	// Local development convenience; the file is absent in deployed environments.
	_ = godotenv.Load()

	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	ctx := context.Background()

	store, cleanup, err := openStore(ctx)
	if err != nil {
		applog.LogFatal(ctx, "storage backend init failed", err,
			zap.String("backend", os.Getenv("KV_BACKEND")))
	}
	defer cleanup()

	memorialService := memorialsvc.NewStore(store)
	sessionService := auth.NewService()
	verifier := auth.NewSessionVerifier(sessionService, func(ctx context.Context) []string {
		cfg, err := memorialService.Config(ctx)
		if err != nil {
			return nil
		}
		return cfg.SuperAdminEmails
	})

	respond.Install()

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/v1/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	router.Get("/health", health.Handler)

	cfg := huma.DefaultConfig("Neshama Memorial API", Version)
	cfg.DocsPath = "/api-docs"
	cfg.Servers = []*huma.Server{{URL: "/v1"}}

	var api huma.API
	router.Route("/v1", func(r chi.Router) {
		api = humachi.New(r, cfg)
	})

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	// Register routes
	routes.Register(api, verifier, sessionService, memorialService)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		applog.LogError(shutdownCtx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}

// openStore selects the persistence backend from KV_BACKEND: "firestore",
// "memory", or the default "sqlite".
func openStore(ctx context.Context) (kv.Store, func(), error) {
	switch os.Getenv("KV_BACKEND") {
	case "firestore":
		clients, err := firebase.InitializeClients(ctx, firebase.Config{
			ProjectID:                    os.Getenv("FIREBASE_PROJECT_ID"),
			GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := clients.Close(); err != nil {
				applog.LogError(context.Background(), "firestore close error", err)
			}
		}
		return kv.NewFirestore(clients.Firestore), cleanup, nil

	case "memory":
		return kv.NewMemory(), func() {}, nil

	default:
		path := os.Getenv("SQLITE_PATH")
		if path == "" {
			path = "memorial.db"
		}
		db, err := kv.OpenSQLite(path, true, "NORMAL")
		if err != nil {
			return nil, nil, err
		}
		cleanup := func() {
			if err := db.Close(); err != nil {
				applog.LogError(context.Background(), "sqlite close error", err)
			}
		}
		return db, cleanup, nil
	}
}
