package config

import (
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Samoo1234/HotelCosta-sub000/models"

	"github.com/shopspring/decimal"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func envOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

func mysqlDSNFromURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}

	user := u.User.Username()
	pass, _ := u.User.Password()
	host := u.Hostname()
	port := u.Port()
	if port == "" {
		port = "3306"
	}

	dbName := strings.TrimPrefix(u.Path, "/")
	if dbName == "" {
		return "", fmt.Errorf("mysql url missing database name")
	}

	q := u.Query()
	if q.Get("charset") == "" {
		q.Set("charset", "utf8mb4")
	}
	if q.Get("parseTime") == "" {
		q.Set("parseTime", "True")
	}
	if q.Get("loc") == "" {
		q.Set("loc", "Local")
	}

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbName, q.Encode()), nil
}

func resolveMySQLDSN() (string, error) {
	raw := strings.TrimSpace(os.Getenv("MYSQL_URL"))
	if raw == "" {
		raw = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	}

	if raw != "" {
		if strings.HasPrefix(raw, "mysql://") {
			return mysqlDSNFromURL(raw)
		}
		return raw, nil
	}

	user := envOrDefault("DB_USER", "root")
	pass := envOrDefault("DB_PASS", "")
	host := envOrDefault("DB_HOST", "127.0.0.1")
	port := envOrDefault("DB_PORT", "3306")
	dbName := envOrDefault("DB_NAME", "hotelcosta")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		user, pass, host, port, dbName,
	), nil
}

// SeedDatabase inserts a starter room inventory and product catalog
// when the tables are empty.
func SeedDatabase() {
	var roomCount int64
	DB.Model(&models.Room{}).Count(&roomCount)
	if roomCount == 0 {
		rooms := []models.Room{
			{Number: "101", Type: "Standard", Status: models.RoomAvailable, Floor: "1", PricePerNight: decimal.NewFromInt(120), MaxOccupancy: 2},
			{Number: "102", Type: "Standard", Status: models.RoomAvailable, Floor: "1", PricePerNight: decimal.NewFromInt(120), MaxOccupancy: 2},
			{Number: "201", Type: "Superior", Status: models.RoomAvailable, Floor: "2", PricePerNight: decimal.NewFromInt(180), MaxOccupancy: 3},
			{Number: "202", Type: "Superior", Status: models.RoomAvailable, Floor: "2", PricePerNight: decimal.NewFromInt(180), MaxOccupancy: 3},
			{Number: "301", Type: "Deluxe", Status: models.RoomAvailable, Floor: "3", PricePerNight: decimal.NewFromInt(260), MaxOccupancy: 4},
		}
		if err := DB.Create(&rooms).Error; err != nil {
			log.Printf("warning: failed to seed rooms: %v", err)
		} else {
			log.Println("Rooms seeded")
		}
	}

	var productCount int64
	DB.Model(&models.Product{}).Count(&productCount)
	if productCount == 0 {
		products := []models.Product{
			{Name: "Mineral Water", Category: "minibar", UnitPrice: decimal.NewFromFloat(3.50), Active: true},
			{Name: "Soft Drink", Category: "minibar", UnitPrice: decimal.NewFromFloat(5.00), Active: true},
			{Name: "Breakfast", Category: "restaurant", UnitPrice: decimal.NewFromFloat(25.00), Active: true},
			{Name: "Dinner", Category: "restaurant", UnitPrice: decimal.NewFromFloat(55.00), Active: true},
			{Name: "Laundry", Category: "services", UnitPrice: decimal.NewFromFloat(18.00), Active: true},
		}
		if err := DB.Create(&products).Error; err != nil {
			log.Printf("warning: failed to seed products: %v", err)
		} else {
			log.Println("Products seeded")
		}
	}
}

func ConnectDatabase() error {
	dsn, err := resolveMySQLDSN()
	if err != nil {
		return err
	}

	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold: time.Second,
			LogLevel:      logger.Warn,
			Colorful:      true,
		},
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: newLogger})
	if err != nil {
		return err
	}

	DB = db

	// AutoMigrate in parent->child order
	if err := DB.AutoMigrate(
		&models.Guest{},
		&models.Room{},
		&models.Product{},
		&models.Reservation{},
		&models.Consumption{},
		&models.Payment{},
		&models.ActivityLog{},
	); err != nil {
		return err
	}

	SeedDatabase()
	return nil
}
