package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/aandreu7/iNutriScan/models"
)

type Config struct {
	ServerPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Timezone decides the calendar-day boundary for every handler.
	// "Local" keeps the process timezone.
	Timezone string

	GoogleAPIKey   string
	GeminiModel    string
	AssemblyAIKey  string
	USDAAPIKey     string
	SpoonacularKey string
}

// Load reads configuration from the environment, with .env support for
// local runs. Missing provider keys are not fatal here; the service
// that needs one fails at call time instead.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_NAME", "inutriscan")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")

	cfg := &Config{
		ServerPort:     v.GetString("SERVER_PORT"),
		DBHost:         v.GetString("DB_HOST"),
		DBPort:         v.GetString("DB_PORT"),
		DBUser:         v.GetString("DB_USER"),
		DBPassword:     v.GetString("DB_PASSWORD"),
		DBName:         v.GetString("DB_NAME"),
		DBSSLMode:      v.GetString("DB_SSL_MODE"),
		Timezone:       v.GetString("TIMEZONE"),
		GoogleAPIKey:   v.GetString("GOOGLE_API_KEY"),
		GeminiModel:    v.GetString("GEMINI_MODEL"),
		AssemblyAIKey:  v.GetString("ASSEMBLYAI_API_KEY"),
		USDAAPIKey:     v.GetString("USDA_API_KEY"),
		SpoonacularKey: v.GetString("SPOONACULAR_API_KEY"),
	}
	return cfg, nil
}

// Location resolves the configured day-boundary timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	return loc, nil
}

func (c *Config) dsn() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// InitDB opens the Postgres connection and migrates the schema.
func InitDB(cfg *Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.dsn()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.DailyBucket{},
		&models.NutrientRecord{},
	); err != nil {
		return nil, fmt.Errorf("automigrate failed: %w", err)
	}
	return db, nil
}
