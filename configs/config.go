package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBSource      string
	UploadDir     string
	AdminDeleteID string
	// APIBaseURL is what admin tooling points the catalog client at.
	APIBaseURL string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		Port:          getEnv("PORT", "8000"),
		DBSource:      getEnv("DB_SOURCE", "catalog.db"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		AdminDeleteID: getEnv("ADMIN_DELETE_ID", "admin"),
		APIBaseURL:    getEnv("API_BASE_URL", "http://localhost:8000"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
