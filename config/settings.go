package config

import (
	"os"
	"strings"
)

// Business constants. These form part of the observable contract: the
// full-day service is priced per guest and capped per calendar day.
const (
	FullDayPricePerGuest = 5.0
	MaxFullDayCapacity   = 20
)

// EnvOrDefault returns the trimmed value of an environment variable, or the
// default when unset or blank.
func EnvOrDefault(key, def string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return def
	}
	return value
}

// JWTSecret returns the signing key for admin access tokens.
func JWTSecret() []byte {
	return []byte(EnvOrDefault("JWT_SECRET", "change-this-secret"))
}
