package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/jortega87/restaurant-booking/internal/adapter/handler"
	"github.com/jortega87/restaurant-booking/internal/adapter/repository/postgres"
	"github.com/jortega87/restaurant-booking/internal/core/bus"
	"github.com/jortega87/restaurant-booking/internal/core/services"
	"github.com/jortega87/restaurant-booking/internal/platform/config"
	"github.com/jortega87/restaurant-booking/internal/platform/database"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to db after retries: %v", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	defer db.Close()

	log.Printf("Connecting to Redis at %s...", cfg.RedisAddr)

	redisClient := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   0,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	log.Println("Redis connected successfully")

	bookingRepo := postgres.NewBookingRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	readModel := postgres.NewBookingReadModel(db)

	commandBus := bus.NewCommandBus()
	queryBus := bus.NewQueryBus()

	err = services.RegisterHandlers(commandBus, queryBus, services.Dependencies{
		Bookings:  bookingRepo,
		Clients:   clientRepo,
		ReadModel: readModel,
		Events:    bus.NewConsoleEventBus(),
		Cache:     redisClient,
	})
	if err != nil {
		log.Fatalf("Handler registration failed: %v", err)
	}

	mux := http.NewServeMux()

	handler.NewBookingHandler(commandBus, queryBus).RegisterRoutes(mux)
	handler.NewClientHandler(commandBus, queryBus).RegisterRoutes(mux)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server startup failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}
