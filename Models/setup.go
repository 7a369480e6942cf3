package Models

import (
	"fmt"
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Connect opens the database selected by DB_DRIVER (sqlite by default,
// mysql for production) and migrates the schema.
func Connect() {
	connection, err := openConnection()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	DB = connection

	if err := Migrate(DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func openConnection() (*gorm.DB, error) {
	switch os.Getenv("DB_DRIVER") {
	case "mysql":
		dsn := os.Getenv("DB_DSN")
		if dsn == "" {
			return nil, fmt.Errorf("DB_DSN is required when DB_DRIVER=mysql")
		}
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	default:
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "apardb.db"
		}
		return gorm.Open(sqlite.Open(path), &gorm.Config{})
	}
}

// Migrate creates the schema in dependency order.
func Migrate(db *gorm.DB) error {
	// 1. Models with no dependencies
	if err := db.AutoMigrate(&User{}, &Project{}); err != nil {
		return err
	}

	// 2. Models keyed to a project
	if err := db.AutoMigrate(&VendorPurchaseOrder{}, &Invoice{}); err != nil {
		return err
	}

	// 3. Transactions reference project, invoice and purchase order
	return db.AutoMigrate(&Transaction{})
}
