package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server    ServerConfig
	Auth      AuthConfig
	OTP       OTPConfig
	Events    EventsConfig
	Receipt   ReceiptConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type AuthConfig struct {
	JWTSecret  string
	SessionTTL time.Duration
}

type OTPConfig struct {
	CodeTTL       time.Duration
	DevMode       bool // surface codes on screen/log instead of sending
	MailerSendKey string
	EmailFrom     string
	EmailFromName string
	RelayDomain   string
}

type EventsConfig struct {
	Enabled bool
	NATSURL string
}

type ReceiptConfig struct {
	ComposeTimeout time.Duration
	EventName      string
	SeasonEN       string
	SeasonAR       string
}

type RateLimitConfig struct {
	OTPRequests int
	OTPWindow   time.Duration
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 5*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
			IdleTimeout:  getDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Auth: AuthConfig{
			JWTSecret:  getEnv("JWT_SECRET", "dev-only-secret-change-in-prod"),
			SessionTTL: getDuration("SESSION_TTL", 12*time.Hour),
		},
		OTP: OTPConfig{
			CodeTTL:       getDuration("OTP_CODE_TTL", 2*time.Minute),
			DevMode:       getBool("OTP_DEV_MODE", true),
			MailerSendKey: getEnv("MAILERSEND_API_KEY", ""),
			EmailFrom:     getEnv("OTP_EMAIL_FROM", "desk@tripolikarting.local"),
			EmailFromName: getEnv("OTP_EMAIL_FROM_NAME", "Tripoli Karting Desk"),
			RelayDomain:   getEnv("OTP_RELAY_DOMAIN", "sms.tripolikarting.local"),
		},
		Events: EventsConfig{
			Enabled: getBool("EVENTS_ENABLED", false),
			NATSURL: getEnv("NATS_URL", "nats://localhost:4222"),
		},
		Receipt: ReceiptConfig{
			ComposeTimeout: getDuration("RECEIPT_COMPOSE_TIMEOUT", 10*time.Second),
			EventName:      getEnv("RECEIPT_EVENT_NAME", "TRIPOLI KARTING RACE 2025"),
			SeasonEN:       getEnv("RECEIPT_SEASON_EN", "SEASON 1"),
			SeasonAR:       getEnv("RECEIPT_SEASON_AR", "الموسم الأول"),
		},
		RateLimit: RateLimitConfig{
			OTPRequests: getInt("OTP_RATE_LIMIT", 5),
			OTPWindow:   getDuration("OTP_RATE_WINDOW", 10*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
