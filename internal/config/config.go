package config

import (
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env            string
	MongoURI       string
	MongoDB        string
	ServerAddr     string
	FrontendOrigin string

	RateLimitReservations int
	RateLimitContact      int
	RateLimitWindowSec    int

	RedisURL        string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	AdminAPIKey       string
	AdminUser         string
	AdminPassword     string
	AdminSetupKey     string
	JWTSecret         string
	AccessTTLMinutes  int
	RefreshTTLMinutes int
	CookieSecure      bool

	BrevoAPIKey      string
	BrevoSenderEmail string
	BrevoSenderName  string
	BrevoSandbox     bool

	// Catalog audit settings. The expected distribution is release data, not
	// a constant: different price-sheet releases carried different splits.
	CatalogExpectedTotal int
	CatalogDistribution  map[string]int

	// Off by default: the booking desk resolves date conflicts manually, so
	// overlap rejection is opt-in.
	ReservationConflictCheck bool

	Timezone *time.Location
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func Load() (*Config, error) {
	loadDotEnv(".env")
	loc, err := time.LoadLocation(getEnv("TZ", "America/Martinique"))
	if err != nil {
		return nil, err
	}

	mongoURI := getEnv("MONGO_URI", "mongodb://localhost:27017/khanelconcept")
	mongoDB := getEnv("MONGO_DB", "")
	if mongoDB == "" {
		mongoDB = mongoDBFromURI(mongoURI)
	}
	if mongoDB == "" {
		mongoDB = "khanelconcept"
	}

	cfg := &Config{
		Env:            getEnv("APP_ENV", "development"),
		MongoURI:       mongoURI,
		MongoDB:        mongoDB,
		ServerAddr:     getEnv("SERVER_ADDR", ":8001"),
		FrontendOrigin: getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),

		RateLimitReservations: getEnvInt("RATE_LIMIT_RESERVATIONS", 10),
		RateLimitContact:      getEnvInt("RATE_LIMIT_CONTACT", 5),
		RateLimitWindowSec:    getEnvInt("RATE_LIMIT_WINDOW_SEC", 60),

		RedisURL:        getEnv("REDIS_URL", ""),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 60),

		AdminAPIKey:       getEnv("ADMIN_API_KEY", ""),
		AdminUser:         getEnv("ADMIN_USER", "admin"),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AdminSetupKey:     getEnv("ADMIN_SETUP_KEY", ""),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		AccessTTLMinutes:  getEnvInt("ACCESS_TTL_MINUTES", 15),
		RefreshTTLMinutes: getEnvInt("REFRESH_TTL_MINUTES", 43200),
		CookieSecure:      getEnv("COOKIE_SECURE", "false") == "true",

		BrevoAPIKey:      getEnv("BREVO_API_KEY", ""),
		BrevoSenderEmail: getEnv("BREVO_SENDER_EMAIL", ""),
		BrevoSenderName:  getEnv("BREVO_SENDER_NAME", "KhanelConcept"),
		BrevoSandbox:     getEnv("BREVO_SANDBOX", "false") == "true",

		CatalogExpectedTotal: getEnvInt("CATALOG_EXPECTED_TOTAL", 21),
		CatalogDistribution:  parseDistribution(getEnv("CATALOG_DISTRIBUTION", "sejour:15,fete:5,piscine:1")),

		ReservationConflictCheck: getEnv("RESERVATION_CONFLICT_CHECK", "false") == "true",

		Timezone: loc,
	}

	return cfg, nil
}

// parseDistribution reads "category:count,category:count" pairs. Unparseable
// entries are skipped rather than failing startup.
func parseDistribution(raw string) map[string]int {
	dist := make(map[string]int)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			continue
		}
		count, err := strconv.Atoi(strings.TrimSpace(kv[1]))
		if err != nil || count < 0 {
			continue
		}
		dist[strings.TrimSpace(kv[0])] = count
	}
	return dist
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; we only support the first one as db name.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}

func loadDotEnv(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	lines := strings.Split(string(data), "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if key == "" {
			continue
		}
		if _, exists := os.LookupEnv(key); exists {
			continue
		}
		_ = os.Setenv(key, val)
	}
}
