package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rapcars/rental-backend/internal/database"
	"github.com/rapcars/rental-backend/internal/handlers"
	"github.com/rapcars/rental-backend/internal/middleware"
	"github.com/rapcars/rental-backend/internal/services"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := database.InitDB()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	// Configure connection pool
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize Redis
	if err := services.InitRedis(); err != nil {
		log.Fatalf("Failed to initialize Redis: %v", err)
	}

	// Initialize Storage (S3 or local fallback)
	if err := services.InitStorage(); err != nil {
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	// Initialize WebSocket hub
	hub := services.NewHub()
	go hub.Run()

	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Serve uploaded car images when running with local storage
	r.Static("/uploads", services.UploadDir())

	// Routes
	api := r.Group("/api")
	{
		// Public routes, rate limited since they take unauthenticated traffic
		public := api.Group("/")
		public.Use(middleware.RateLimit(rate.Limit(5), 10))
		{
			auth := public.Group("/auth")
			{
				auth.POST("/register", handlers.Register(db))
				auth.POST("/login", handlers.Login(db))
			}

			public.GET("/cars", handlers.GetCars(db))
			public.GET("/cars/:id", handlers.GetCar(db))
			public.POST("/contact", handlers.GuestContact(db))
		}

		// WebSocket connection
		api.GET("/ws", middleware.AuthMiddleware(), handlers.WebSocketHandler(hub))

		// Protected client routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", handlers.GetProfile(db))

			bookings := protected.Group("/bookings")
			{
				bookings.POST("", handlers.CreateBooking(db))
			}

			reservations := protected.Group("/reservations")
			{
				reservations.GET("", handlers.GetClientReservations(db))
				reservations.GET("/:id", handlers.GetReservation(db))
				reservations.GET("/:id/qrcode", handlers.GetReservationQRCode(db))
			}

			tickets := protected.Group("/support/tickets")
			{
				tickets.POST("", handlers.CreateTicket(db))
				tickets.GET("", handlers.GetClientTickets(db))
				tickets.GET("/:id", handlers.GetTicket(db))
				tickets.POST("/:id/reply", handlers.ReplyTicket(db))
			}
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(), middleware.AdminOnly())
		{
			cars := admin.Group("/cars")
			{
				cars.GET("", handlers.AdminListCars(db))
				cars.POST("", handlers.AdminCreateCar(db))
				cars.PUT("/:id", handlers.AdminUpdateCar(db))
				cars.DELETE("/:id", handlers.AdminDeleteCar(db))
			}

			reservations := admin.Group("/reservations")
			{
				reservations.GET("", handlers.AdminListReservations(db))
				reservations.GET("/:id", handlers.AdminGetReservation(db))
				reservations.PUT("/:id", handlers.AdminUpdateReservation(db, hub))
			}

			clients := admin.Group("/clients")
			{
				clients.GET("", handlers.AdminListClients(db))
				clients.GET("/:id", handlers.AdminGetClient(db))
				clients.POST("/:id/suspend", handlers.AdminSuspendClient(db))
				clients.POST("/:id/activate", handlers.AdminActivateClient(db))
			}

			payments := admin.Group("/payments")
			{
				payments.GET("", handlers.AdminListPayments(db))
				payments.POST("", handlers.AdminCreatePayment(db))
				payments.POST("/:id/refund", handlers.AdminRefundPayment(db))
			}

			tickets := admin.Group("/tickets")
			{
				tickets.GET("", handlers.AdminListTickets(db))
				tickets.GET("/:id", handlers.AdminGetTicket(db))
				tickets.POST("/:id/reply", handlers.AdminReplyTicket(db, hub))
				tickets.POST("/:id/close", handlers.AdminCloseTicket(db))
			}

			admin.GET("/reports", handlers.GetReports(db))
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
