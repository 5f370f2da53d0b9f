package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"nutriplan-backend/models"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds all runtime settings. Auth policy (hash cost, password length,
// token lifetime) is configuration, not code.
type Config struct {
	Port           string
	DBHost         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPort         string
	JWTSecret      string
	TokenTTLHours  int
	BcryptCost     int
	PasswordMinLen int
	AuthRateRPS    float64
	AuthRateBurst  int
}

// Load reads the environment into a Config. Database settings are required;
// policy knobs fall back to defaults. JWT_SECRET is deliberately not enforced
// here — its absence must fail token issuance, not process start.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return Config{
		Port:           getenv("APP_PORT", "8080"),
		DBHost:         must("DB_HOST"),
		DBUser:         must("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         must("DB_NAME"),
		DBPort:         getenv("DB_PORT", "5432"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTTLHours:  getenvInt("TOKEN_TTL_HOURS", 72),
		BcryptCost:     getenvInt("BCRYPT_COST", bcrypt.DefaultCost),
		PasswordMinLen: getenvInt("PASSWORD_MIN_LEN", 8),
		AuthRateRPS:    getenvFloat("AUTH_RATE_LIMIT_RPS", 5),
		AuthRateBurst:  getenvInt("AUTH_RATE_LIMIT_BURST", 10),
	}
}

// InitDB connects to Postgres and migrates the account table. TranslateError
// lets the unique-index violation on email surface as gorm.ErrDuplicatedKey.
func InitDB(cfg Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Account{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

func must(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("missing required env var: %s", key)
	}
	return v
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid int for %s: %q", key, s)
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("invalid number for %s: %q", key, s)
	}
	return f
}
