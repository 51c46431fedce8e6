package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"school_registry/internal/logger"
	"school_registry/internal/models"
)

// InitDB opens the Postgres connection from environment variables, runs the
// schema migration and returns the handle. Callers pass it down explicitly;
// there is no package-global session.
func InitDB() *gorm.DB {
	// Load .env (if present)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found – relying on env vars")
	}

	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	password := getEnv("DB_PASSWORD", "password")
	dbname := getEnv("DB_NAME", "student_teacher")
	sslmode := getEnv("DB_SSLMODE", "disable")
	timezone := getEnv("DB_TIMEZONE", "UTC")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, dbname, port, sslmode, timezone,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.GormLogger(),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.StudentDetails{},
		&models.TeacherDetails{},
		&models.UserMapping{},
		&models.LoginLog{},
	)
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}

	// A pair may have at most one active mapping. Concurrent creates both
	// passing the existence check are settled here, not in the service.
	db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_user_mapping_active_pair
		ON user_mapping (student_id, teacher_id) WHERE isdelete = false;`)

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("could not access sql.DB handle: %v", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	return db
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}
