package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"news_backend/internal/app/di"
	"news_backend/internal/app/router"
	authadapters "news_backend/internal/feature/auth/adapters"
	authhandler "news_backend/internal/feature/auth/transport/handler"
	authusecase "news_backend/internal/feature/auth/usecase"
	storyhandler "news_backend/internal/feature/stories/transport/handler"
	storyusecase "news_backend/internal/feature/stories/usecase"
	infradb "news_backend/internal/platform/db"
	"news_backend/internal/platform/pwhash"
	infraredis "news_backend/internal/platform/redis"
)

func main() {
	// .envがあれば読み込む（本番では環境変数を直接設定）
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] no .env file loaded")
	}

	// db
	db := infradb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache:", err)
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := authadapters.NewUserGorm(db)
	sessionRepo := authadapters.NewSessionGorm(db)
	storyRepo := di.NewStoryRepository(rdb, db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, sessionRepo, pwhash.New())
	storiesUC := storyusecase.NewStoriesUsecase(storyRepo, di.NewTitleFetcher())

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	storyH := storyhandler.NewStoryHandler(storiesUC)

	// ルータ生成
	router := router.NewRouter(authH, storyH, authUC)

	if err := router.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
