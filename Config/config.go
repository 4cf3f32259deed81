package Config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the console and the reference server read from the
// environment. All keys have working defaults so a bare checkout runs.
type Config struct {
	ApiBaseURL    string
	SessionFile   string
	DevServerAddr string
	JwtSecret     string
	DbFile        string
}

func Load() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	return &Config{
		ApiBaseURL:    getEnv("API_BASE_URL", "http://localhost:5000/api"),
		SessionFile:   getEnv("SESSION_FILE", "session.json"),
		DevServerAddr: getEnv("DEV_SERVER_ADDR", ":5000"),
		JwtSecret:     getEnv("JWT_SECRET", "secret"),
		DbFile:        getEnv("DB_FILE", "database.db"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
