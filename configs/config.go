package configs

import (
	"log"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cast"
)

type Config struct {
	Port      string
	DBDriver  string
	DBSource  string
	JWTSecret string
	JWTTTL    time.Duration

	RedisAddr     string
	RedisPassword string

	GeocoderURL   string
	GeocoderAgent string

	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

var (
	cfg  *Config
	once sync.Once
)

// LoadConfig reads .env once and caches the result for the process lifetime.
func LoadConfig() *Config {
	once.Do(func() {
		if err := godotenv.Load(); err != nil {
			log.Println("no .env file, using environment")
		}

		cfg = &Config{
			Port:      getEnv("PORT", "8000"),
			DBDriver:  getEnv("DB_DRIVER", "sqlite"),
			DBSource:  getEnv("DB_SOURCE", "car_rental.db"),
			JWTSecret: getEnv("JWT_SECRET", "changeme"),
			JWTTTL:    time.Duration(cast.ToInt(getEnv("JWT_TTL_HOURS", "24"))) * time.Hour,

			RedisAddr:     os.Getenv("REDIS_ADDR"),
			RedisPassword: os.Getenv("REDIS_PASSWORD"),

			GeocoderURL:   getEnv("GEOCODER_URL", "https://nominatim.openstreetmap.org"),
			GeocoderAgent: getEnv("GEOCODER_AGENT", "your_car_rental"),

			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminEmail:    os.Getenv("ADMIN_EMAIL"),
			AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		}
	})
	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
