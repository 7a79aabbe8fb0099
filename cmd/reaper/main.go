package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	authadapters "news_backend/internal/feature/auth/adapters"
	"news_backend/internal/feature/auth/usecase"
	infradb "news_backend/internal/platform/db"
)

// Removes session rows that passed their expiry. The server never deletes
// them itself, so without this job they accumulate forever.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file loaded")
	}

	db := infradb.OpenDB()
	sessions := authadapters.NewSessionGorm(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().Add(-usecase.SessionTTL)
	n, err := sessions.DeleteExpired(ctx, cutoff)
	if err != nil {
		log.Fatal("failed to delete expired sessions:", err)
	}
	log.Printf("reaper ok: removed %d expired sessions", n)
}
