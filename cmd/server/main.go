package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/ordena/internal/auth"
	"github.com/mmynk/ordena/internal/config"
	"github.com/mmynk/ordena/internal/geo"
	"github.com/mmynk/ordena/internal/inventory"
	"github.com/mmynk/ordena/internal/middleware"
	"github.com/mmynk/ordena/internal/notify"
	"github.com/mmynk/ordena/internal/photos"
	"github.com/mmynk/ordena/internal/service"
	"github.com/mmynk/ordena/internal/storage/sqlite"
	"github.com/mmynk/ordena/pkg/api/apiconnect"
	"github.com/mmynk/ordena/pkg/logging"
)

func main() {
	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	photoStore, err := photos.NewOS(cfg.PhotoDir)
	if err != nil {
		slog.Error("Failed to initialize photo store", "error", err)
		os.Exit(1)
	}
	slog.Info("Photo store initialized", "path", photoStore.Dir())

	notifier, closeNotifier := buildNotifier(cfg)
	defer closeNotifier()

	suppressor, closeSuppressor, err := buildSuppressor(cfg)
	if err != nil {
		slog.Error("Failed to initialize alert suppression", "error", err)
		os.Exit(1)
	}
	defer closeSuppressor()

	monitor := inventory.NewStockMonitor(cfg.LowStockThreshold, notify.NewDispatcher(notifier, suppressor))
	geocoder := geo.NewNominatimClient(cfg.GeocoderURL, cfg.GeocoderUserAgent, nil)

	// Inventory RPCs require a device token when auth is enabled. Location RPCs
	// touch no stored data, so a token is optional there.
	opts := connect.WithInterceptors(middleware.LoggingInterceptor())
	locationOpts := opts
	if cfg.AuthEnabled() {
		jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
		opts = connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.RequireAuth(jwtManager))
		locationOpts = connect.WithInterceptors(middleware.LoggingInterceptor(), middleware.OptionalAuth(jwtManager))
		slog.Info("Device authentication enabled")
	} else {
		slog.Warn("JWT_SECRET not set, RPCs are unauthenticated")
	}

	mux := http.NewServeMux()

	// Register Connect services
	restaurantPath, restaurantHandler := apiconnect.NewRestaurantServiceHandler(service.NewRestaurantService(store, photoStore), opts)
	mux.Handle(restaurantPath, restaurantHandler)

	productPath, productHandler := apiconnect.NewProductServiceHandler(service.NewProductService(store, monitor), opts)
	mux.Handle(productPath, productHandler)

	locationPath, locationHandler := apiconnect.NewLocationServiceHandler(service.NewLocationService(geocoder), locationOpts)
	mux.Handle(locationPath, locationHandler)

	mux.Handle("/photos/", http.StripPrefix("/photos/", photoStore.Handler()))
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Add logging and CORS middleware
	handler := loggingMiddleware(corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Shutdown failed", "error", err)
		}
	}()

	slog.Info("Connect server starting", "address", server.Addr, "url", "http://localhost"+server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}

// buildNotifier always logs alerts and also publishes them to Kafka when brokers are configured.
func buildNotifier(cfg *config.Config) (notify.Notifier, func()) {
	sinks := notify.Multi{notify.NewLogNotifier(slog.Default())}
	if len(cfg.KafkaBrokers) == 0 {
		return sinks, func() {}
	}

	kafkaNotifier := notify.NewKafkaNotifier(cfg.KafkaBrokers, cfg.KafkaTopic)
	slog.Info("Publishing low-stock alerts to Kafka", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	return append(sinks, kafkaNotifier), func() {
		if err := kafkaNotifier.Close(); err != nil {
			slog.Error("Failed to close Kafka writer", "error", err)
		}
	}
}

// buildSuppressor returns nil (alert on every load pass) unless ALERT_SUPPRESSION=window.
// The window is tracked in Redis when REDIS_ADDR is set, in memory otherwise.
func buildSuppressor(cfg *config.Config) (notify.Suppressor, func(), error) {
	if cfg.AlertSuppression != config.SuppressionWindow {
		return nil, func() {}, nil
	}
	if cfg.RedisAddr == "" {
		slog.Info("Alert suppression enabled", "window", cfg.AlertWindow, "backend", "memory")
		return notify.NewWindowSuppressor(cfg.AlertWindow), func() {}, nil
	}

	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, err
	}

	slog.Info("Alert suppression enabled", "window", cfg.AlertWindow, "backend", "redis", "addr", cfg.RedisAddr)
	return notify.NewRedisSuppressor(client, cfg.AlertWindow), func() { client.Close() }, nil
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		slog.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		slog.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Connect-Protocol-Version, Connect-Timeout-Ms, X-Request-Id")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, X-Request-Id")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
