package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds every setting read from the environment at startup.
type Config struct {
	Port string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimeZone string

	JWTSecret string
	JWTTTL    time.Duration

	AdminEmail    string
	AdminPassword string

	UploadDir      string
	AllowedOrigins []string
	CloudinaryURL  string

	BookingSweepSpec string

	LogFile  string
	LogLevel string
}

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on env vars")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", "72h"))
	if err != nil {
		logrus.WithError(err).Warn("invalid JWT_TTL, falling back to 72h")
		ttl = 72 * time.Hour
	}

	return Config{
		Port: getEnv("PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", "password"),
		DBName:     getEnv("DB_NAME", "teranga_match"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),
		DBTimeZone: getEnv("DB_TIMEZONE", "UTC"),

		JWTSecret: getEnv("JWT_SECRET", "supersecret"),
		JWTTTL:    ttl,

		AdminEmail:    getEnv("ADMIN_EMAIL", ""),
		AdminPassword: getEnv("ADMIN_PASSWORD", ""),

		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		CloudinaryURL:  getEnv("CLOUDINARY_URL", ""),

		BookingSweepSpec: getEnv("BOOKING_SWEEP_SPEC", "@every 15m"),

		LogFile:  getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// getEnv reads an environment variable or returns the provided default
func getEnv(key, defaultValue string) string {
	if v, exists := os.LookupEnv(key); exists {
		return v
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
