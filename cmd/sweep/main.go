package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"roomstay/internal/database"
	"roomstay/internal/modules/billing"
	"roomstay/internal/modules/booking"
	"roomstay/internal/modules/maintenance"
	"roomstay/internal/modules/property"
	"roomstay/internal/notify"
	"roomstay/internal/repository"
)

// One-shot checkout sweep for deployments that prefer an external cron over
// the in-process scheduler.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}

	customerRepo := repository.NewCustomerRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	ledger := property.NewLedger(propertyRepo)
	guard := maintenance.NewService(maintenanceRepo, bookingRepo, roomRepo)

	// The sweep touches neither billing nor websockets; both collaborators
	// stay idle.
	hub := notify.NewHub()
	defer hub.Close()
	billingURL := os.Getenv("BILL_SERVICE_URL")
	if billingURL == "" {
		billingURL = "http://localhost:8081"
	}
	dispatcher := billing.NewDispatcher(billing.NewClient(billingURL), 1)

	svc := booking.NewService(
		bookingRepo,
		roomRepo,
		customerRepo,
		guard,
		ledger,
		ledger,
		dispatcher,
		notify.NewNotifier(hub),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	processed, err := svc.AutoCheckIn(ctx, time.Now())
	if err != nil {
		log.Fatalf("checkout sweep failed: %v", err)
	}

	log.Printf("checkout sweep completed: bookings=%d", processed)
}
