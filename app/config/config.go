package config

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

type Config struct {
	DB *sql.DB

	// DatasetPath is the CSV the offline trainer reads; ArtifactsDir holds
	// the persisted pipeline, metrics and feature importance files.
	DatasetPath  string
	ArtifactsDir string

	// InviteWebhookURL receives the outbound invitation email POSTs.
	InviteWebhookURL string

	JWTSecret string
	BaseURL   string
	Port      string
}

var AppConfig *Config

// Load reads .env (if present) and the process environment, connects to the
// database and fills AppConfig. Missing required configuration is fatal.
// Missing ML artifacts are not checked here; the predictor degrades on its
// own (see app/ml).
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	// Connection pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}
	log.Println("Database connected successfully")

	AppConfig = &Config{
		DB:               db,
		DatasetPath:      envOr("DATASET_PATH", "DataSets/student_performance_dummy_data_1000.csv"),
		ArtifactsDir:     envOr("ML_ARTIFACTS_DIR", "ml_artifacts"),
		InviteWebhookURL: os.Getenv("INVITE_WEBHOOK_URL"),
		JWTSecret:        jwtSecret,
		BaseURL:          envOr("BASE_URL", "http://127.0.0.1:8000"),
		Port:             envOr("PORT", "8000"),
	}
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
