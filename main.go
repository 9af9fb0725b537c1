package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Samoo1234/HotelCosta-sub000/config"
	"github.com/Samoo1234/HotelCosta-sub000/controllers"
	"github.com/Samoo1234/HotelCosta-sub000/routes"
	"github.com/Samoo1234/HotelCosta-sub000/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := config.ConnectDatabase(); err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	db := config.DB

	// Services
	rules := services.NewRulesEngine()
	activityService := services.NewActivityService(db)
	reservationService := services.NewReservationService(db, rules, activityService, logger)
	consumptionService := services.NewConsumptionService(db, activityService)
	guestService := services.NewGuestService(db)
	roomService := services.NewRoomService(db)
	productService := services.NewProductService(db)
	paymentService := services.NewPaymentService(db)
	dashboardService := services.NewDashboardService(db)

	// Controllers
	reservationController := controllers.NewReservationController(reservationService)
	guestController := controllers.NewGuestController(guestService)
	roomController := controllers.NewRoomController(roomService)
	productController := controllers.NewProductController(productService)
	consumptionController := controllers.NewConsumptionController(consumptionService)
	paymentController := controllers.NewPaymentController(paymentService)
	dashboardController := controllers.NewDashboardController(dashboardService, activityService)

	router := routes.SetupRouter(
		logger,
		reservationController,
		guestController,
		roomController,
		productController,
		consumptionController,
		paymentController,
		dashboardController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}
