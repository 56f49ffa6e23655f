package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/estately/estately/adapters/intent"
	pgxadapter "github.com/estately/estately/adapters/pgx"
	"github.com/estately/estately/adapters/rediscache"
	"github.com/estately/estately/core"
	"github.com/estately/estately/pkg/cache"
	"github.com/estately/estately/server"
)

func main() {
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}
	secret := os.Getenv("TOKEN_SECRET")
	authorityURL := os.Getenv("PAYMENT_AUTHORITY_URL")
	authorityKey := os.Getenv("PAYMENT_AUTHORITY_KEY")
	if authorityURL == "" {
		log.Fatal("PAYMENT_AUTHORITY_URL is required")
	}

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		log.Fatalf("pgxpool.New: %v", err)
	}
	defer pool.Close()

	listingCache := newListingCache(ctx)

	app, err := core.New(core.Config{
		Secret:    secret,
		Store:     pgxadapter.New(pool),
		Authority: intent.New(authorityURL, authorityKey),
		Cache:     listingCache,
	})
	if err != nil {
		log.Fatalf("could not assemble application: %v", err)
	}

	f := fiber.New()
	f.Use(requestid.New())
	f.Use(logger.New(logger.Config{
		Format:     "${time}|${requestid}|${status}|${latency}|${ip}|${method}|${path}|${errors}\n",
		TimeFormat: "2006/01/02 15:04:05",
		TimeZone:   "Local",
	}))

	srv := server.New(app, server.Options{
		SecureCookies: os.Getenv("SECURE_COOKIES") == "true",
	})
	srv.Register(f)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":6000"
	}
	if err := f.Listen(addr); err != nil {
		log.Fatalf("app.Listen: %v", err)
	}
}

// newListingCache prefers redis when an address is configured and falls
// back to the in-process cache otherwise.
func newListingCache(ctx context.Context) core.ListingCache {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return cache.NewInMemoryCache(core.CacheConfig{
			TTL:     5 * time.Minute,
			MaxSize: 500,
		})
	}

	client := redis.NewClient(&redis.Options{Addr: redisAddr})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("redis unavailable, falling back to in-memory cache: %v", err)
		return cache.NewInMemoryCache(core.CacheConfig{TTL: 5 * time.Minute, MaxSize: 500})
	}
	return rediscache.New(client, 5*time.Minute)
}
