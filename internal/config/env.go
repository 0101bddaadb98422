package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr     string
	GinMode     string
	DBDriver    string
	DatabaseURL string
	JWTSecret   string
	AdminRoles  []string
	CORSOrigins []string
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

// LoadEnv reads settings from the process environment. A .env file in the
// working directory is loaded first when present; real env vars win.
func LoadEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment")
	}

	driver := strings.ToLower(getEnv("DB_DRIVER", "pgx"))
	if driver == "postgres" || driver == "postgresql" {
		driver = "pgx"
	}

	origins := splitCSV(os.Getenv("CORS_ALLOWED_ORIGINS"))
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}

	return Env{
		AppAddr:     getEnv("APP_ADDR", ":8080"),
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDriver:    driver,
		DatabaseURL: strings.TrimSpace(os.Getenv("DATABASE_URL")),
		JWTSecret:   strings.TrimSpace(os.Getenv("JWT_SECRET")),
		AdminRoles:  splitCSV(getEnv("ADMIN_ROLES", "admin,owner")),
		CORSOrigins: origins,
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
