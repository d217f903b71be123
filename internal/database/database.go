package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	_ "modernc.org/sqlite"
)

func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite for local development:", dsn)

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate runs AutoMigrate for the given models and, on PostgreSQL,
// installs the exclusion constraint that rejects two live bookings with
// overlapping [check_in, check_out) ranges on the same room even if two
// service instances race past the application-level check.
func Migrate(db *gorm.DB, models ...any) error {
	if err := db.AutoMigrate(models...); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}

	return db.Exec(`
DO $$ BEGIN
  ALTER TABLE bookings ADD CONSTRAINT idx_no_double_booking
    EXCLUDE USING gist (
      room_id WITH =,
      tsrange(check_in_date, check_out_date, '[)') WITH &&
    ) WHERE (active_status = 1 AND status <> 2);
EXCEPTION
  WHEN duplicate_table OR duplicate_object THEN NULL;
END $$;
`).Error
}
