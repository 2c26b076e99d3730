package config

import (
	"log"
	"os"
	"strconv"
)

type APIConfig struct {
	Port      string
	EmailUser string
	EmailPass string
	SMTPHost  string
	SMTPPort  int
}

var API APIConfig

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("env %s must be an integer, got %q", k, v)
	}
	return n
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("required env %s is not set", k)
	}
	return v
}

// MustLoadAPI fills API from the environment. SMTP defaults match the
// gmail preset the service was written against.
func MustLoadAPI() {
	API = APIConfig{
		Port:      getenv("PORT", "3000"),
		EmailUser: mustEnv("EMAIL_USER"),
		EmailPass: mustEnv("EMAIL_PASS"),
		SMTPHost:  getenv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  getenvInt("SMTP_PORT", 587),
	}
}
