package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config carries everything the binaries thread into their components.
// Nothing here is mutated after Load returns.
type Config struct {
	AppAddr     string
	GinMode     string
	DBDSN       string
	USDRate     float64
	JWTSecret   string
	AuthEnabled bool
	CORSOrigins []string
}

const defaultUSDRate = 3700 // UGX per USD

func Load() Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/guesthouse?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	usdRate := float64(defaultUSDRate)
	if v := strings.TrimSpace(os.Getenv("USD_RATE")); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			usdRate = parsed
		}
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "guesthouse-dev-secret-change-me"
	}

	authEnabled := false
	if v := strings.TrimSpace(os.Getenv("AUTH_ENABLED")); v != "" {
		authEnabled, _ = strconv.ParseBool(v)
	}

	var origins []string
	for _, o := range strings.Split(os.Getenv("CORS_ALLOWED_ORIGINS"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return Config{
		AppAddr:     appAddr,
		GinMode:     strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:       dsn,
		USDRate:     usdRate,
		JWTSecret:   secret,
		AuthEnabled: authEnabled,
		CORSOrigins: origins,
	}
}
