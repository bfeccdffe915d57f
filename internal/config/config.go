package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// JWTConfig defines issuer/secret pair for auth verification.
type JWTConfig struct {
	Issuer string
	Secret []byte
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                string
	MongoURI            string
	MongoDatabase       string
	ProfileCollection   string
	RoomCollection      string
	MatchCollection     string
	DocumentCollection  string
	Timeout             time.Duration
	ServerLog           *log.Logger
	JWTConfigs          []JWTConfig
	JWTAudience         string
	AllowedEmailDomains []string
	BlockedEmailDomains []string
	AdminEmails         []string
	AllowedOrigins      []string
	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	MatchCacheTTL       time.Duration
}

// defaultBlockedEmailDomains are well-known disposable mailbox providers.
var defaultBlockedEmailDomains = []string{
	"mailinator.com",
	"tempmail.com",
	"10minutemail.com",
	"guerrillamail.com",
	"yopmail.com",
}

// Load reads environment variables and returns a fully populated Config.
func Load() Config {
	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	var jwtConfigs []JWTConfig
	if secret := strings.TrimSpace(os.Getenv("AUTH_APP_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_APP_JWT_ISSUER", "roomee-auth"),
			Secret: []byte(secret),
		})
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_GOOGLE_JWT_SECRET")); secret != "" {
		jwtConfigs = append(jwtConfigs, JWTConfig{
			Issuer: envOrDefault("AUTH_GOOGLE_JWT_ISSUER", "auth-google"),
			Secret: []byte(secret),
		})
	}
	if len(jwtConfigs) == 0 {
		log.Fatal("JWT secrets not configured. Set AUTH_APP_JWT_SECRET or AUTH_GOOGLE_JWT_SECRET.")
	}

	jwtAudience := strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE"))

	cacheTTL := 15 * time.Minute
	if raw := strings.TrimSpace(os.Getenv("MATCH_CACHE_TTL")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			cacheTTL = parsed
		}
	}

	redisDB := 0
	if raw := strings.TrimSpace(os.Getenv("REDIS_DB")); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			redisDB = parsed
		}
	}

	cfg := Config{
		Addr:                envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:            envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase:       envOrDefault("MONGO_DB", "roomee"),
		ProfileCollection:   envOrDefault("PROFILE_COLLECTION", "profiles"),
		RoomCollection:      envOrDefault("ROOM_COLLECTION", "rooms"),
		MatchCollection:     envOrDefault("MATCH_COLLECTION", "matches"),
		DocumentCollection:  envOrDefault("DOCUMENT_COLLECTION", "identity_documents"),
		Timeout:             timeout,
		ServerLog:           log.New(os.Stdout, "[roomee-api] ", log.LstdFlags|log.Lshortfile),
		JWTConfigs:          jwtConfigs,
		JWTAudience:         jwtAudience,
		AllowedEmailDomains: parseList("AUTH_ALLOWED_EMAIL_DOMAINS", nil),
		BlockedEmailDomains: parseList("AUTH_BLOCKED_EMAIL_DOMAINS", defaultBlockedEmailDomains),
		AdminEmails:         parseList("ADMIN_EMAILS", nil),
		AllowedOrigins:      parseList("API_ALLOWED_ORIGINS", []string{"*"}),
		RedisAddr:           strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPassword:       strings.TrimSpace(os.Getenv("REDIS_PASSWORD")),
		RedisDB:             redisDB,
		MatchCacheTTL:       cacheTTL,
	}

	cfg.ServerLog.Printf("loaded config: addr=%s mongo=%s redis=%q", cfg.Addr, cfg.MongoDatabase, cfg.RedisAddr)

	return cfg
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
