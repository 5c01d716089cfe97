package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	CORSOrigins string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	dbUrl, exists := os.LookupEnv("DB_URL")
	if !exists || dbUrl == "" {
		return nil, fmt.Errorf("DB_URL is required")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       dbUrl,
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
