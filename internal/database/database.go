package database

import (
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	_ "modernc.org/sqlite"

	"rentguide/internal/listing"
	"rentguide/internal/qa"
	"rentguide/internal/review"
)

// Connect opens the store by DSN. A postgres:// URL selects PostgreSQL
// (production), anything else is treated as a SQLite file path.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Info().Msg("connecting to PostgreSQL")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Info().Str("dsn", dsn).Msg("using SQLite for local development")

	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}

// Migrate creates or updates the community tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&review.RentReview{},
		&qa.Question{},
		&qa.Answer{},
		&listing.PropertyListing{},
		&listing.SavedListing{},
	)
}
