package main

import (
	"starfleet/internal/app/ds"
	"starfleet/internal/app/dsn"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("Error loading .env file, using environment")
	}

	postgresString := dsn.FromEnv()
	db, err := gorm.Open(postgres.Open(postgresString), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("error connecting to database: %v", err)
	}

	err = db.AutoMigrate(&ds.Ship{})
	if err != nil {
		logrus.Fatalf("error migrating ship: %v", err)
	}

	logrus.Info("Database migration completed")
}
