package config

import (
	"os"
	"strconv"
	"time"
)

// SyncConfig carries the calendar sync knobs. The cron importer and the
// manual endpoints historically ran with different retention cutoffs; both
// stay configurable rather than silently unified.
type SyncConfig struct {
	FetchTimeout        time.Duration
	UserAgent           string
	RetentionDaysCron   int
	RetentionDaysManual int
	Interval            time.Duration
	LockTTL             time.Duration
	MaxConcurrentRooms  int
}

// LoadSyncConfig reads sync settings from the environment with defaults
func LoadSyncConfig() SyncConfig {
	return SyncConfig{
		FetchTimeout:        envDuration("SYNC_FETCH_TIMEOUT", 15*time.Second),
		UserAgent:           envString("SYNC_USER_AGENT", "stayflow-backoffice/1.0 calendar-sync"),
		RetentionDaysCron:   envInt("SYNC_RETENTION_DAYS_CRON", 90),
		RetentionDaysManual: envInt("SYNC_RETENTION_DAYS_MANUAL", 30),
		Interval:            envDuration("SYNC_INTERVAL", time.Hour),
		LockTTL:             envDuration("SYNC_LOCK_TTL", 5*time.Minute),
		MaxConcurrentRooms:  envInt("SYNC_MAX_CONCURRENT_ROOMS", 4),
	}
}

// JWTSecret returns the signing secret for staff session tokens
func JWTSecret() string {
	return envString("JWT_SECRET", "dev-secret-change-me")
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
