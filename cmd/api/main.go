package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"roomstay/internal/database"
	"roomstay/internal/middleware"
	"roomstay/internal/modules/auth"
	"roomstay/internal/modules/billing"
	"roomstay/internal/modules/booking"
	"roomstay/internal/modules/maintenance"
	"roomstay/internal/modules/property"
	"roomstay/internal/notify"
	jwtsvc "roomstay/internal/pkg/jwt"
	"roomstay/internal/repository"
	"roomstay/internal/scheduler"
)

func main() {
	// .env is optional, real deployments set the environment directly
	_ = godotenv.Load()

	dsn := getenv("DATABASE_URL", "roomstay.db")
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}
	billingURL := getenv("BILL_SERVICE_URL", "http://localhost:8081")
	port := getenv("PORT", "8080")

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db, repository.Models()...); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	jwtService := jwtsvc.New(secret, 24*time.Hour)

	hub := notify.NewHub()
	defer hub.Close()
	notifier := notify.NewNotifier(hub)
	wsHandler := notify.NewWSHandler(hub, jwtService)

	dispatcher := billing.NewDispatcher(billing.NewClient(billingURL), 64)
	dispatcher.Start()
	defer dispatcher.Stop()

	ledger := property.NewLedger(propertyRepo)

	authService := auth.NewService(userRepo, jwtService)
	authHandler := auth.NewHandler(authService)

	maintenanceService := maintenance.NewService(maintenanceRepo, bookingRepo, roomRepo)
	maintenanceHandler := maintenance.NewHandler(maintenanceService)

	bookingService := booking.NewService(
		bookingRepo,
		roomRepo,
		customerRepo,
		maintenanceService,
		ledger,
		ledger,
		dispatcher,
		notifier,
	)
	bookingHandler := booking.NewHandler(bookingService, roomRepo)

	propertyService := property.NewService(propertyRepo, roomTypeRepo, roomRepo, bookingRepo)
	propertyHandler := property.NewHandler(propertyService)

	sweeper := scheduler.New(bookingService, getenv("CHECKOUT_SWEEP_SPEC", "0 1 * * *"))
	if err := sweeper.Start(); err != nil {
		log.Fatal(err)
	}
	defer sweeper.Stop()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	wsHandler.RegisterRoutes(r)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(jwtService))
		{
			bookingHandler.RegisterRoutes(protected)

			ownerOnly := protected.Group("/")
			ownerOnly.Use(middleware.OwnerOnly())
			{
				maintenanceHandler.RegisterRoutes(ownerOnly)
			}

			propertyHandler.RegisterRoutes(protected, ownerOnly)
		}
	}

	log.Printf("Listening on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
