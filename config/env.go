package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is everything the service reads from the environment.
type Config struct {
	Port               string
	AdminPIN           string
	TokenSecret        string
	StorePath          string
	DatabaseURL        string
	GCSBucket          string
	GCSCredentialsFile string
	AllowOrigins       string
}

// Load reads .env if present and fills in dev defaults. The default PIN
// exists so the app boots out of the box, but running with it is loudly
// discouraged.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment")
	}

	cfg := Config{
		Port:               getenv("PORT", "8080"),
		AdminPIN:           os.Getenv("ADMIN_PIN"),
		TokenSecret:        getenv("ADMIN_TOKEN_SECRET", "taphoa-dev-secret"),
		StorePath:          getenv("STORE_PATH", "retail_app_data.json"),
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		GCSBucket:          os.Getenv("GCS_BUCKET"),
		GCSCredentialsFile: os.Getenv("GCS_CREDENTIALS_FILE"),
		AllowOrigins:       getenv("ALLOW_ORIGINS", "http://127.0.0.1:5500,http://localhost:5500,http://localhost:3000"),
	}

	if cfg.AdminPIN == "" {
		cfg.AdminPIN = "1234"
		log.Println("ADMIN_PIN not set, using default PIN; set ADMIN_PIN before going live")
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
