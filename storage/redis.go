package storage

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

var Redis *redis.Client

// ReservationsChannel carries a message whenever the reservations table
// changes (new submission, admin status change). Subscribers reload their
// snapshot; the payload is only a human-readable reason.
const ReservationsChannel = "reservations:changed"

func InitializeRedis() {
	// Get Redis URL from environment, fallback to localhost for development
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "localhost:6379"
		log.Println("⚠️  REDIS_URL not set, using localhost:6379 (development mode)")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: "", // No password for now
		DB:       0,
	})

	log.Println("🔧 Redis initialized with address:", redisURL)
}

// PublishReservationChange notifies every running instance that the
// reservation set changed. Best effort: a lost message only delays the
// calendar until the next change, so failures are logged and swallowed.
func PublishReservationChange(ctx context.Context, reason string) {
	if Redis == nil {
		return
	}
	if err := Redis.Publish(ctx, ReservationsChannel, reason).Err(); err != nil {
		log.Println("⚠️  Failed to publish reservation change:", err)
	}
}
