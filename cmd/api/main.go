package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/gymbook/gymbook-backend/internal/booking"
	"github.com/gymbook/gymbook-backend/internal/database"
	"github.com/gymbook/gymbook-backend/internal/directory"
	"github.com/gymbook/gymbook-backend/internal/handlers"
	"github.com/gymbook/gymbook-backend/internal/middleware"
	"github.com/gymbook/gymbook-backend/internal/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database with better error handling
	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// Get underlying SQL DB instance
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	// Initialize Redis
	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	// Wire the booking engine
	ledger := booking.NewLedger(db, directory.New(db), logger)

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Routes
	api := r.Group("/api")
	{
		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Directory reads for booking forms
			protected.GET("/trainers", handlers.GetTrainers(db))
			protected.GET("/services", handlers.GetServices(db))

			// Trainer availability
			availability := protected.Group("/availability")
			{
				availability.GET("", handlers.GetAvailability(ledger))
				availability.POST("", handlers.CreateAvailability(ledger))
			}

			// Bookings routes
			bookings := protected.Group("/bookings")
			{
				bookings.POST("", handlers.CreateBooking(ledger, hub))
				bookings.GET("", handlers.GetAllBookings(ledger))
				bookings.GET("/stats", handlers.GetBookingStats(ledger))
				bookings.GET("/member", handlers.GetMemberBookings(ledger))
				bookings.GET("/trainer", handlers.GetTrainerBookings(ledger))
				bookings.GET("/:id", handlers.GetBooking(ledger))
				bookings.GET("/:id/history", handlers.GetBookingHistory(ledger))
				bookings.PATCH("/:id/status", handlers.UpdateBookingStatus(ledger, hub))
				bookings.POST("/:id/reschedule", handlers.RescheduleBooking(ledger, hub))
				bookings.PATCH("/:id/payment", handlers.UpdatePaymentStatus(ledger, hub))
				bookings.DELETE("/:id", handlers.DeleteBooking(ledger, hub))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
