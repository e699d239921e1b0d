package storage

import (
	"log"
	"os"
	"strings"

	"github.com/czdsgnr/roubenky/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func connectToDB() *gorm.DB {
	// Only load .env in development (when RENDER env var is not set)
	if os.Getenv("RENDER") == "" {
		err := godotenv.Load()
		if err != nil {
			log.Println("Warning: Could not load .env file (this is normal in production)")
		}
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Panic("DB_CONNECTION_STRING environment variable is required")
	}

	db, dbError := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if dbError != nil {
		log.Panic("error connection to db: " + dbError.Error())
	}

	DB = db
	return db
}

func performMigrations(db *gorm.DB) {
	db.AutoMigrate(
		&models.Reservation{},
		&models.ContentDocument{},
		&models.AdminUser{},
		&models.ImageAsset{},
		&models.AuditLog{},
	)
}

// adminSeedFromEnv builds the back-office account from ADMIN_EMAIL and
// ADMIN_PASSWORD. The email is lowercased because login looks accounts up
// by their lowercased address.
func adminSeedFromEnv() (models.AdminUser, bool) {
	email := strings.ToLower(os.Getenv("ADMIN_EMAIL"))
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return models.AdminUser{}, false
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Println("❌ Failed to hash admin password:", err)
		return models.AdminUser{}, false
	}

	return models.AdminUser{Email: email, Password: string(hashed), Role: "super_admin"}, true
}

// seedAdminUser creates the back-office account on first boot. An existing
// account is left alone so a rotated password in the database is not
// silently overwritten.
func seedAdminUser(db *gorm.DB) {
	admin, ok := adminSeedFromEnv()
	if !ok {
		log.Println("⚠️  ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	var count int64
	db.Model(&models.AdminUser{}).Where("email = ?", admin.Email).Count(&count)
	if count > 0 {
		return
	}

	if err := db.Create(&admin).Error; err != nil {
		log.Println("❌ Failed to seed admin user:", err)
		return
	}
	log.Println("✅ Seeded admin user", admin.Email)
}

func InitializeDB() {
	db := connectToDB()
	performMigrations(db)
	seedAdminUser(db)
}
