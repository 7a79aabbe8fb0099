package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "news_backend/internal/feature/auth/transport/handler"
	storyhandler "news_backend/internal/feature/stories/transport/handler"
	"news_backend/internal/platform/authmw"
	"news_backend/internal/platform/http/handler"
)

func NewRouter(authHandler *authhandler.AuthHandler, stories *storyhandler.StoryHandler,
	resolver authmw.UserResolver) *gin.Engine {
	r := gin.Default()

	// CORS設定: クッキー認証のためAllowCredentialsが必須
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		origin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{origin},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// クッキーからユーザーを解決（認証必須ではない）
	r.Use(authmw.SessionLoader(resolver))

	// 認証不要
	// 導通確認用
	r.GET("/healthz", handler.Health)
	// 新規ユーザー登録
	r.POST("/users", authHandler.Signup)
	// ログイン（セッションクッキー発行）
	r.POST("/sessions", authHandler.Login)
	// ストーリー一覧（投票合計つき）
	r.GET("/stories", stories.List)
	// コメント一覧
	r.GET("/stories/:id/comments", stories.Comments)

	// 認証必須のルート
	auth := r.Group("/")
	// authmw.AuthRequired() ミドルウェアを適用
	// → セッションクッキーが必要になる
	auth.Use(authmw.AuthRequired())
	{
		auth.GET("/sessions", authHandler.Me)
		auth.DELETE("/sessions", authHandler.Logout)
		auth.POST("/stories", stories.Add)
		auth.DELETE("/stories/:id", stories.Delete)
		auth.POST("/stories/:id/votes", stories.Vote)
		auth.POST("/stories/:id/comments", stories.AddComment)
	}

	return r
}
