package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authadapters "news_backend/internal/feature/auth/adapters"
	authentity "news_backend/internal/feature/auth/domain/entity"
	storyentity "news_backend/internal/feature/stories/domain/entity"
)

// Config holds database connection settings.
type Config struct {
	User     string
	Password string
	Name     string
	Host     string
	Port     string
	SQLite   string // SQLiteファイルパス。Hostが未設定の場合に使用
}

// LoadConfigFromEnv は環境変数からデータベース設定を読み込みます。
func LoadConfigFromEnv() Config {
	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "./stories.db"
	}
	return Config{
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Host:     os.Getenv("DB_HOST"),
		Port:     os.Getenv("DB_PORT"),
		SQLite:   path,
	}
}

// BuildDSN はPostgreSQL接続用のDSN文字列を生成します。
func BuildDSN(cfg Config) string {
	port := cfg.Port
	if port == "" {
		port = "5432"
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, port)
}

// Opener opens a gorm connection for a DSN. Extracted so retry logic can be
// tested without a live database.
type Opener func(dsn string) (*gorm.DB, error)

// ConnectWithRetry は接続に成功するかタイムアウトするまで再試行します。
func ConnectWithRetry(dsn string, timeout time.Duration, open Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := open(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("DB connect failed after %v: %w", timeout, err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}
}

// OpenDB opens the configured database. DB_HOST selects PostgreSQL;
// otherwise a local SQLite file is used. TranslateError is enabled so
// adapters can match gorm.ErrDuplicatedKey across drivers.
func OpenDB() *gorm.DB {
	cfg := LoadConfigFromEnv()

	gormCfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)
	if cfg.Host != "" {
		db, err = ConnectWithRetry(BuildDSN(cfg), 60*time.Second, func(dsn string) (*gorm.DB, error) {
			return gorm.Open(gpostgres.Open(dsn), gormCfg)
		})
	} else {
		db, err = gorm.Open(gsqlite.Open(cfg.SQLite), gormCfg)
	}
	if err != nil {
		log.Fatalf("DB open failed: %v", err)
	}

	if os.Getenv("RUN_MIGRATIONS") != "false" {
		// マイグレーション（User, Session, Story, Vote, Comment）
		if err := db.AutoMigrate(
			&authentity.User{},
			&authadapters.SessionModel{},
			&storyentity.Story{},
			&storyentity.Vote{},
			&storyentity.Comment{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
