package main

import (
	"context"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"roomstay/internal/database"
	"roomstay/internal/domain"
	"roomstay/internal/modules/property"
	"roomstay/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "roomstay.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running migrations...")
	if err := database.Migrate(db, repository.Models()...); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	// Clean in dependency order so foreign keys never complain
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM maintenances")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM room_types")
	db.Exec("DELETE FROM properties")
	db.Exec("DELETE FROM customers")
	db.Exec("DELETE FROM users")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)

	log.Println("Creating users...")

	superadmin := seedUser(ctx, userRepo, "admin@roomstay.kz", "admin123", domain.RoleSuperadmin, "Superadmin")
	owner := seedUser(ctx, userRepo, "owner@roomstay.kz", "owner123", domain.RoleOwner, "Aigerim Bekova")
	customer := seedUser(ctx, userRepo, "customer@roomstay.kz", "customer123", domain.RoleCustomer, "Daniyar Seitov")

	log.Println("Creating sample property...")

	propertyRepo := repository.NewPropertyRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	propertyService := property.NewService(propertyRepo, roomTypeRepo, roomRepo, bookingRepo)

	p, err := propertyService.Create(ctx, domain.Actor{UserID: owner.ID, Role: domain.RoleOwner}, property.CreatePropertyRequest{
		PropertyName: "Almaty City Hotel",
		Type:         domain.PropertyHotel,
		Address:      "12 Abay Avenue, Almaty",
		Province:     2,
		Description:  "City-center hotel near the metro",
		OwnerName:    owner.Name,
		RoomTypes: []property.RoomTypeInput{
			{
				Name:      "Standard",
				Price:     100000,
				Capacity:  2,
				Facility:  "WiFi, AC",
				Floor:     2,
				RoomCount: 3,
			},
			{
				Name:      "Deluxe",
				Price:     180000,
				Capacity:  4,
				Facility:  "WiFi, AC, Bathtub",
				Floor:     3,
				RoomCount: 2,
			},
		},
	})
	if err != nil {
		log.Fatal("Property seed failed:", err)
	}

	log.Println("Seed complete")
	log.Printf("  superadmin: %s / admin123 (%s)", superadmin.Email, superadmin.ID)
	log.Printf("  owner:      %s / owner123 (%s)", owner.Email, owner.ID)
	log.Printf("  customer:   %s / customer123 (%s)", customer.Email, customer.ID)
	log.Printf("  property:   %s (%d rooms)", p.PropertyID, p.TotalRoom)
}

func seedUser(ctx context.Context, repo *repository.UserRepository, email, password string, role domain.UserRole, name string) *domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("bcrypt failed:", err)
	}

	u := &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Name:         name,
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatalf("Seeding %s failed: %v", email, err)
	}
	return u
}
