package main

import (
	"context"
	"log"
	"os"
	"time"

	"log/slog"

	"github.com/joho/godotenv"

	apphttp "shopzone.com/app/internal/http"
	"shopzone.com/app/internal/modules/catalog"
	"shopzone.com/app/internal/modules/session"
)

const defaultCatalogURL = "https://dummyjson.com/products"

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	secret := os.Getenv("COOKIE_SECRET")
	if secret == "" {
		log.Fatal("COOKIE_SECRET environment variable is required")
	}

	catalogURL := os.Getenv("CATALOG_URL")
	if catalogURL == "" {
		catalogURL = defaultCatalogURL
	}

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	sessionTTL := 12 * time.Hour
	if v := os.Getenv("SESSION_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Fatalf("invalid SESSION_TTL: %v", err)
		}
		sessionTTL = d
	}

	store := catalog.NewStore(catalog.NewClient(catalogURL), logger)

	// One-shot fetch; the storefront serves the loading state until it
	// resolves, and an empty catalog if it fails. No retry.
	go store.Load(context.Background())

	sessions := session.NewStore(sessionTTL)

	r := apphttp.NewRouter(logger, store, sessions, apphttp.Config{
		CookieSecret: []byte(secret),
		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
	})
	_ = r.Run(addr)
}
