package config

import "os"

// Config carries the runtime settings read from the environment. The .env
// file is loaded by main before this runs.
type Config struct {
	Port              string
	DataDir           string
	JWTSecret         string
	DashboardPassword string
	AllowedOrigin     string
}

func LoadConfig() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		DataDir:           getEnv("DATA_DIR", "data"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		DashboardPassword: os.Getenv("DASHBOARD_PASSWORD"),
		AllowedOrigin:     getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
