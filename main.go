package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"farmhub/config"
	"farmhub/database"
	consultationRepoPkg "farmhub/database/repository/consultation"
	productRepoPkg "farmhub/database/repository/product"
	tradeRepoPkg "farmhub/database/repository/trade"
	userRepoPkg "farmhub/database/repository/user"
	"farmhub/handlers"
	"farmhub/middleware"
	"farmhub/routes"
	"farmhub/services/consultation"
	"farmhub/services/notification"
	"farmhub/services/product"
	"farmhub/services/rating"
	"farmhub/services/storage"
	"farmhub/services/trade"
	"farmhub/services/user"
	"farmhub/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()

	avatarStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		logger.Sugar().Warnf("main: avatar storage disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	productRepo := productRepoPkg.NewMongoProductRepo()
	tradeRepo := tradeRepoPkg.NewMongoTradeRepo()
	consultationRepo := consultationRepoPkg.NewMongoConsultationRepo()

	// Services.
	notifier := notification.NewSMTPNotificationService()
	aggregator := rating.NewAggregator(userRepo, tradeRepo, consultationRepo)

	userService := &user.DefaultUserService{
		Repo:   userRepo,
		Notify: notifier,
	}
	if avatarStorage != nil {
		userService.Storage = avatarStorage
	}

	productService := &product.DefaultProductService{
		Repo:  productRepo,
		Users: userRepo,
	}

	tradeService := &trade.DefaultTradeService{
		Trades:     tradeRepo,
		Products:   productRepo,
		Users:      userRepo,
		Aggregator: aggregator,
		Notify:     notifier,
	}

	consultationService := &consultation.DefaultConsultationService{
		Consultations: consultationRepo,
		Users:         userRepo,
		Aggregator:    aggregator,
		Notify:        notifier,
	}

	// Assemble the handler bundle and register routes.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:     userRepo,
		Auth:         handlers.NewAuthHandler(userService),
		User:         handlers.NewUserHandler(userService),
		Product:      handlers.NewProductHandler(productService),
		Trade:        handlers.NewTradeHandler(tradeService),
		Consultation: handlers.NewConsultationHandler(consultationService),
	}
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
