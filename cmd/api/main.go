package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"aac-assist/internal/catalog"
	"aac-assist/internal/config"
	"aac-assist/internal/email"
	apihttp "aac-assist/internal/http"
	"aac-assist/internal/llm"
	"aac-assist/internal/repository"
	"aac-assist/internal/service"
	"aac-assist/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	backend, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open key value store", zap.Error(err))
	}
	defer backend.Close()
	store := backend.Store

	var notifier email.Sender = email.NewDisabledSender("email sender not configured")
	if cfg.SMTPHost != "" {
		sender, err := email.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom, cfg.ContactInbox)
		if err != nil {
			logger.Warn("smtp sender init failed", zap.Error(err))
		} else {
			notifier = sender
		}
	}

	generator := llm.NewCatalogGenerator(catalog.New())
	profileSvc := service.NewProfileService(logger, store)
	prefSvc := service.NewPreferenceService(logger, store)
	contactSvc := service.NewContactService(logger, notifier, cfg.ContactDelay).
		WithRateLimiter(backend.ContactLimiter(cfg.ContactRateWindow, cfg.ContactRateMax))
	protoSvc := service.NewPrototypeService(
		logger,
		generator,
		profileSvc,
		repository.NewSessionCache[*service.PrototypeController](cfg.SessionTTL),
		service.Delays{
			ExtendReply:    cfg.ExtendReplyDelay,
			BackgroundInfo: cfg.BackgroundDelay,
			WordToRequest:  cfg.WordRequestDelay,
		},
	)

	router := apihttp.NewRouter(
		logger,
		cfg.CORSOrigins,
		apihttp.NewMockAPIHandler(logger, protoSvc),
		apihttp.NewPrototypeHandler(logger, protoSvc),
		apihttp.NewShellHandler(logger, profileSvc, prefSvc, contactSvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting server", zap.String("port", cfg.HTTPPort), zap.String("store", cfg.ResolveStoreBackend()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down server")
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
