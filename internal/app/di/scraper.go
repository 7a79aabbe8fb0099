package di

import (
	"time"

	"news_backend/internal/feature/stories/usecase"
	infrahttp "news_backend/internal/platform/http"
	"news_backend/internal/platform/scraper"
	"news_backend/internal/shared/ratelimiter"
)

// NewTitleFetcher creates a fully configured PageTitleScraper with HTTP
// client and rate limiter.
func NewTitleFetcher() usecase.TitleFetcher {
	cfg := scraper.LoadConfig()
	httpClient := infrahttp.NewHTTPClient(cfg.Timeout)
	limiter := ratelimiter.NewRateLimiter(60, time.Minute)
	return scraper.NewPageTitleScraper(cfg, httpClient, limiter)
}
