package main

import (
	"database/sql"
	"log"
	"net/http"
	"os"
	"time"

	"logistics-cloud/internal/audit"
	"logistics-cloud/internal/auth"
	"logistics-cloud/internal/observability/metrics"
	recapapp "logistics-cloud/internal/recap/application"
	recaphttp "logistics-cloud/internal/recap/interfaces/http"
	shipmentapp "logistics-cloud/internal/shipments/application"
	shipmentrepo "logistics-cloud/internal/shipments/infrastructure/postgres"
	shipmenthttp "logistics-cloud/internal/shipments/interfaces/http"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := loadConfig()
	logger := log.New(os.Stdout, "", log.LstdFlags)

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("db open error: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Fatalf("db ping error: %v", err)
	}

	metrics.Init(db, logger)
	auditRepo := audit.NewRepository(db)

	reportCfg, err := recapapp.LoadReportConfig()
	if err != nil {
		logger.Fatalf("report config error: %v", err)
	}

	shipmentRepo := shipmentrepo.NewShipmentRepository(db)
	shipmentService, err := shipmentapp.NewService(shipmentRepo, systemClock{})
	if err != nil {
		logger.Fatalf("shipment service error: %v", err)
	}
	recapService, err := recapapp.NewRecapService(shipmentRepo, reportCfg, systemClock{})
	if err != nil {
		logger.Fatalf("recap service error: %v", err)
	}

	shipmentHandler, err := shipmenthttp.NewHandler(shipmentService, recapService, auditRepo)
	if err != nil {
		logger.Fatalf("shipment handler error: %v", err)
	}
	recapHandler, err := recaphttp.NewHandler(recapService, auditRepo)
	if err != nil {
		logger.Fatalf("recap handler error: %v", err)
	}

	pinVerifier, err := auth.NewPINVerifier(cfg.SuperPIN, cfg.AdminPIN)
	if err != nil {
		logger.Fatalf("pin verifier error: %v", err)
	}
	pinHandler, err := auth.NewPINHandler(pinVerifier, []byte(cfg.JWTSecret), cfg.TokenTTL, logger)
	if err != nil {
		logger.Fatalf("pin handler error: %v", err)
	}

	policy := auth.NewDefaultPolicy([]string{"/healthz", "/metrics", "/api/v1/auth/pin-verify"}, nil)
	authMiddleware := auth.NewMiddleware([]byte(cfg.JWTSecret), policy)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/auth/pin-verify", pinHandler)
	mux.Handle("/api/v1/shipments", shipmentHandler)
	mux.Handle("/api/v1/shipments/", shipmentHandler)
	mux.Handle("/api/v1/summary", recapHandler)
	mux.Handle("/api/v1/recap", recapHandler)
	mux.Handle("/api/v1/recap/export.pdf", recapHandler)
	mux.Handle("/api/v1/recap/export.xlsx", recapHandler)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: loggingMiddleware(authMiddleware.Wrap(mux), logger)}
	logger.Printf("http listening on %s", cfg.HTTPAddr)
	logger.Fatal(server.ListenAndServe())
}

type config struct {
	DatabaseURL string
	HTTPAddr    string
	JWTSecret   string
	SuperPIN    string
	AdminPIN    string
	TokenTTL    time.Duration
}

func loadConfig() config {
	cfg := config{
		DatabaseURL: getenvDefault("DATABASE_URL", getenvDefault("PG_DSN", "")),
		HTTPAddr:    getenvDefault("HTTP_ADDR", ":8080"),
		JWTSecret:   getenvDefault("AUTH_JWT_SECRET", getenvDefault("JWT_SECRET", "")),
		SuperPIN:    getenvDefault("SUPER_PIN", ""),
		AdminPIN:    getenvDefault("ADMIN_PIN", ""),
		TokenTTL:    getenvDuration("TOKEN_TTL", 12*time.Hour),
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL or PG_DSN is required")
	}
	if cfg.JWTSecret == "" {
		log.Fatal("AUTH_JWT_SECRET is required")
	}
	if cfg.SuperPIN == "" && cfg.AdminPIN == "" {
		log.Fatal("SUPER_PIN or ADMIN_PIN is required")
	}
	return cfg
}

func getenvDefault(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func loggingMiddleware(next http.Handler, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		resp := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(resp, r)
		logger.Printf("http %s %s %d %s", r.Method, r.URL.Path, resp.status, time.Since(start))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }
