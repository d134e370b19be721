package database

import (
	"log"
	"os"
	"time"

	"beltdash/backend/internal/models"
	"beltdash/backend/pkg/password"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection, runs migrations and seeds
// the role table.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: customLogger,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established.")

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Database migrated successfully.")

	if err := Seed(DB); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
}

// Migrate applies the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Role{}, &models.User{}, &models.Score{})
}

// Seed inserts the fixed role rows and, when the users table is empty, a
// default administrator account.
//
// The default admin credentials (admin@example.com / Admin123!) are a
// development convenience only. Replace or remove them before any
// production deployment.
func Seed(db *gorm.DB) error {
	seedDate := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	roles := []models.Role{
		{BaseModel: models.BaseModel{ID: 1, CreatedAt: seedDate, UpdatedAt: seedDate}, Name: models.RolePlayer},
		{BaseModel: models.BaseModel{ID: 2, CreatedAt: seedDate, UpdatedAt: seedDate}, Name: models.RoleAdmin},
	}
	for _, role := range roles {
		if err := db.Where(models.Role{Name: role.Name}).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return nil
	}

	hash, err := password.Hash("Admin123!")
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := models.User{
		BaseModel:    models.BaseModel{CreatedAt: now, UpdatedAt: now},
		Username:     "admin",
		Email:        "admin@example.com",
		PasswordHash: hash,
		Status:       models.StatusActive,
		RoleID:       2,
	}
	return db.Create(&admin).Error
}
