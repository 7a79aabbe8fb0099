package scraper

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"news_backend/internal/feature/stories/usecase"
	"news_backend/internal/shared/ratelimiter"
)

// PageTitleScraper は投稿されたURLのページからタイトルを取得するTitleFetcher実装です。
type PageTitleScraper struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// PageTitleScraperがTitleFetcherを実装していることをコンパイル時に検証します。
var _ usecase.TitleFetcher = (*PageTitleScraper)(nil)

// NewPageTitleScraper は指定された設定とHTTPクライアントでPageTitleScraperの新しいインスタンスを生成します。
func NewPageTitleScraper(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *PageTitleScraper {
	return &PageTitleScraper{cfg: cfg, client: client, limiter: limiter}
}

// Validate retrieves url and returns an error unless the response status is
// a success.
func (s *PageTitleScraper) Validate(ctx context.Context, url string) error {
	res, err := s.get(ctx, url)
	if err != nil {
		return err
	}
	defer closeBody(res)
	return nil
}

// FetchTitle retrieves url and returns the text of the first <title> element
// in the document. A page without a title yields an empty string, not an
// error.
func (s *PageTitleScraper) FetchTitle(ctx context.Context, url string) (string, error) {
	res, err := s.get(ctx, url)
	if err != nil {
		return "", err
	}
	defer closeBody(res)

	doc, err := html.Parse(io.LimitReader(res.Body, s.cfg.MaxBodySize))
	if err != nil {
		return "", fmt.Errorf("parse %s: %w", url, err)
	}
	title, _ := findTitle(doc)
	return title, nil
}

// get performs a throttled GET and verifies the status code.
func (s *PageTitleScraper) get(ctx context.Context, url string) (*http.Response, error) {
	if s.limiter != nil {
		s.limiter.WaitIfNeeded()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		closeBody(res)
		return nil, fmt.Errorf("fetch %s: http %d", url, res.StatusCode)
	}
	return res, nil
}

// findTitle walks the parsed document and returns the text content of the
// first <title> element, trimmed of surrounding whitespace. The bool reports
// whether a <title> element was found at all.
func findTitle(n *html.Node) (string, bool) {
	if n.Type == html.ElementNode && n.Data == "title" {
		var sb strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				sb.WriteString(c.Data)
			}
		}
		return strings.TrimSpace(sb.String()), true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title, ok := findTitle(c); ok {
			return title, ok
		}
	}
	return "", false
}

func closeBody(res *http.Response) {
	if err := res.Body.Close(); err != nil {
		slog.Warn("failed to close response body", "error", err)
	}
}
