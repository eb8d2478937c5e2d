package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"agrilink/marketplace-backend/internal/api"
	"agrilink/marketplace-backend/internal/config"
	"agrilink/marketplace-backend/internal/database"
	"agrilink/marketplace-backend/internal/models"
	"agrilink/marketplace-backend/internal/repository"
	"agrilink/marketplace-backend/internal/scheduler"
	"agrilink/marketplace-backend/internal/service"
	"agrilink/marketplace-backend/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.Logging.Level)
	defer logger.Sync()

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	registry := validation.NewRegistry(cfg.Limits)

	services := api.Services{
		Tasks: service.NewTaskService(
			repository.New[models.FarmTask](db),
			registry.GetOrGeneric(validation.EntityTask), logger),
		Listings: service.NewListingService(
			repository.New[models.ProductListing](db),
			registry.GetOrGeneric(validation.EntityListing), logger),
		Orders: service.NewOrderService(
			repository.New[models.Order](db),
			repository.New[models.OrderItem](db),
			registry.GetOrGeneric(validation.EntityOrder), logger),
		Negotiations: service.NewNegotiationService(
			repository.New[models.Negotiation](db),
			registry.GetOrGeneric(validation.EntityNegotiation), logger),
		Certifications: service.NewCertificationService(
			repository.New[models.Certification](db),
			registry.GetOrGeneric(validation.EntityCertification), logger),
		Shipments: service.NewShipmentService(
			repository.New[models.Shipment](db),
			repository.New[models.ColdChainLog](db),
			repository.New[models.OrderItem](db),
			repository.New[models.ProductListing](db),
			repository.New[models.Product](db),
			registry.GetOrGeneric(validation.EntityShipment), logger),
		QualityReports: service.NewQualityReportService(
			repository.New[models.QualityReport](db),
			registry.GetOrGeneric(validation.EntityQualityReport), logger),

		Products: service.New(validation.EntityProduct,
			repository.New[models.Product](db),
			registry.GetOrGeneric(validation.EntityProduct), logger),
		OrderItems: service.New(validation.EntityOrderItem,
			repository.New[models.OrderItem](db),
			registry.GetOrGeneric(validation.EntityOrderItem), logger),
		Payments: service.New(validation.EntityPayment,
			repository.New[models.Payment](db),
			registry.GetOrGeneric(validation.EntityPayment), logger),
		Profiles: service.New(validation.EntityProfile,
			repository.New[models.Profile](db),
			registry.GetOrGeneric(validation.EntityProfile), logger),
		Reviews: service.New(validation.EntityReview,
			repository.New[models.Review](db),
			registry.GetOrGeneric(validation.EntityReview), logger),
		Messages: service.New(validation.EntityMessage,
			repository.New[models.Message](db),
			registry.GetOrGeneric(validation.EntityMessage), logger),
		Disputes: service.New(validation.EntityDispute,
			repository.New[models.Dispute](db),
			registry.GetOrGeneric(validation.EntityDispute), logger),
		Inventory: service.New(validation.EntityRetailerInventory,
			repository.New[models.RetailerInventory](db),
			registry.GetOrGeneric(validation.EntityRetailerInventory), logger),
		ColdChainLogs: service.New(validation.EntityColdChainLog,
			repository.New[models.ColdChainLog](db),
			registry.GetOrGeneric(validation.EntityColdChainLog), logger),
		BlockchainTxs: service.New(validation.EntityBlockchainTx,
			repository.New[models.BlockchainTxRef](db),
			registry.GetOrGeneric(validation.EntityBlockchainTx), logger),
	}

	sweeper := scheduler.NewExpirySweeper(services.Negotiations, services.Certifications, logger, "@hourly")
	if err := sweeper.Start(); err != nil {
		logger.Fatal("failed to start expiry sweeper", zap.Error(err))
	}

	router := gin.Default()
	api.RegisterRoutes(router, services)

	srv := &http.Server{
		Addr:    cfg.Server.Addr(),
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	logger.Info("server started", zap.String("addr", cfg.Server.Addr()))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down")

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("forced shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

func newLogger(level string) *zap.Logger {
	zapCfg := zap.NewProductionConfig()
	if lvl, err := zapcore.ParseLevel(level); err == nil {
		zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	logger, err := zapCfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}
