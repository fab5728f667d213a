package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	RazorpayKeyID     string
	RazorpayKeySecret string

	// Fee policy. Handling is the active 4% charge; the GST pair is the
	// superseded 2.5%+2.5% policy kept as disabled-by-default configuration.
	HandlingRate float64
	SGSTRate     float64
	CGSTRate     float64

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	return &Config{
		DBSource:          getEnv("DB_SOURCE", "moviefood.db"),
		Port:              getEnv("PORT", "8000"),
		JWTSecret:         getEnv("JWT_SECRET", "changeme"),
		JWTTTL:            time.Duration(12) * time.Hour,
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		HandlingRate:      getEnvFloat("FEE_HANDLING_RATE", 0.04),
		SGSTRate:          getEnvFloat("FEE_SGST_RATE", 0),
		CGSTRate:          getEnvFloat("FEE_CGST_RATE", 0),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Fatalf("invalid %s: %v", key, err)
	}
	return f
}
