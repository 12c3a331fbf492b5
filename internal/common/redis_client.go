package common

import (
	"context"
	"log"
	"net"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the client used for cross-instance sync locks.
// Configuration comes from REDIS_HOST, REDIS_PORT, REDIS_PASSWORD and
// REDIS_DB; the defaults target a local unauthenticated instance.
func NewRedisClient() *redis.Client {
	host := os.Getenv("REDIS_HOST")
	if host == "" {
		host = "localhost"
	}

	port := os.Getenv("REDIS_PORT")
	if port == "" {
		port = "6379"
	}

	db := 0
	if raw := os.Getenv("REDIS_DB"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("[Redis] Ignoring invalid REDIS_DB %q: %v", raw, err)
		} else {
			db = parsed
		}
	}

	addr := net.JoinHostPort(host, port)
	log.Printf("[Redis] Connecting to %s (db %d)", addr, db)

	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     os.Getenv("REDIS_PASSWORD"),
		DB:           db,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// The pool keeps retrying, so a failed ping at startup is not fatal.
		log.Printf("[Redis] Ping failed: %v", err)
		return client
	}

	log.Printf("[Redis] Connected")
	return client
}
