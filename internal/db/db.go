package db

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/kuaforsistemi/salon-scheduler/internal/config"
	"github.com/kuaforsistemi/salon-scheduler/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB")
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.Staff{},
		&models.Service{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	// The slot guard must ignore cancelled rows so a freed slot can be
	// re-booked. AutoMigrate builds the plain composite index, replace
	// it with the partial form.
	db.Exec(`DROP INDEX IF EXISTS idx_appointments_staff_slot`)
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_appointments_staff_slot
        ON appointments (staff_id, start_time)
        WHERE status <> 'cancelled'
    `)

	// Email / phone uniqueness, skipping empty values so phone-only
	// and email-only accounts can coexist.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email
        ON users (email) WHERE email <> ''
    `)
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_users_phone_number
        ON users (phone_number) WHERE phone_number <> ''
    `)

	return db
}
