package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	gormlogger "gorm.io/gorm/logger"

	"github.com/kinotek/catalog/internal/infrastructure/repository"
	"github.com/kinotek/catalog/pkg/database"
)

func main() {
	var (
		host     = flag.String("host", getEnv("DB_HOST", "localhost"), "Database host")
		port     = flag.Int("port", getEnvAsInt("DB_PORT", 5432), "Database port")
		user     = flag.String("user", getEnv("DB_USER", "catalog"), "Database user")
		password = flag.String("password", getEnv("DB_PASSWORD", "catalog"), "Database password")
		dbname   = flag.String("dbname", getEnv("DB_NAME", "catalog"), "Database name")
		sslmode  = flag.String("sslmode", getEnv("DB_SSLMODE", "disable"), "SSL mode")
	)
	flag.Parse()

	db, err := database.NewGormDB(&database.PostgresConfig{
		Host:     *host,
		Port:     *port,
		User:     *user,
		Password: *password,
		Database: *dbname,
		SSLMode:  *sslmode,
		LogLevel: gormlogger.Info,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	fmt.Println("Running database migrations...")
	if err := db.AutoMigrate(repository.Models()...); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	fmt.Println("Migrations completed successfully!")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
