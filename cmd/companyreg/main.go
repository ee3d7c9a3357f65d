package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"companyreg/internal/config"
	"companyreg/internal/observability/logging"
	"companyreg/internal/observability/metrics"
	"companyreg/internal/observability/middleware"
	"companyreg/internal/service"
	impl "companyreg/internal/service/impl"
	"companyreg/internal/store"
	httpx "companyreg/internal/transport/http"
	"companyreg/pkg/db"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg := config.Load()

	logger := logging.NewLogger(logging.Config{
		ServiceName: "companyreg",
		Environment: cfg.Environment,
		Version:     version,
		Level:       cfg.LogLevel,
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	gdb, err := db.Open(db.Config{
		Driver: cfg.DBDriver,
		DSN:    cfg.DatabaseURL,
		LogSQL: cfg.LogSQL,
	})
	if err != nil {
		logger.Error("db open", "error", err)
		os.Exit(1)
	}
	if err := db.Migrate(gdb); err != nil {
		logger.Error("db migrate", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)

	var emails service.EmailService
	if cfg.SMTPHost != "" {
		emails = impl.NewSMTPEmailService(impl.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.SMTPUser,
			Password: cfg.SMTPPass,
			From:     cfg.SMTPFrom,
		})
	} else {
		logger.Warn("SMTP_HOST not set, logging OTP codes instead of sending mail")
		emails = &impl.DevEmailService{Logger: logger}
	}

	var storage service.StorageService = impl.DisabledStorageService{}
	if cfg.MinioEndpoint != "" {
		ms, err := impl.NewMinioStorageService(
			cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey,
			cfg.MinioBucket, cfg.LogoBaseURL, cfg.MinioUseSSL,
		)
		if err != nil {
			logger.Error("minio init", "error", err)
			os.Exit(1)
		}
		storage = ms
	} else {
		logger.Warn("MINIO_ENDPOINT not set, logo uploads disabled")
	}

	companies := impl.NewCompanyServiceImpl(st, impl.NewPasswordServiceArgon2id(), emails, storage)
	companies.OtpTTL = cfg.OtpTTL
	companies.EmailTimeout = cfg.EmailTimeout
	companies.UploadTimeout = cfg.UploadTimeout

	metrics.MustRegister()

	mux := httpx.NewRouter(companies, httpx.RouterConfig{AllowedOrigins: cfg.AllowedOrigins})
	handler := middleware.WithRequestAndTrace(middleware.WithMetrics(mux))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("company registration service listening", "addr", srv.Addr)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
