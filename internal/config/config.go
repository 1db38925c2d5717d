package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	JWTSecret   string

	// Resume parsing service
	ParserURL     string
	ParserAPIKey  string
	ParserVersion string

	// Root of the candidate document tree (Uploads/Candidate/{id})
	UploadsDir string
}

// Load reads configuration from the environment. A .env file is picked up
// when present so local runs do not need exported variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file, using environment variables")
	}

	return &Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ParserURL:     os.Getenv("PARSER_URL"),
		ParserAPIKey:  os.Getenv("PARSER_API_KEY"),
		ParserVersion: getEnv("PARSER_VERSION", "v10"),
		UploadsDir:    getEnv("UPLOADS_DIR", "./Uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
