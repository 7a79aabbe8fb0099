package ratelimiter

import (
	"sync"
	"testing"
	"time"
)

// TestRateLimiter_ConcurrentCalls は複数goroutineからの同時呼び出しが
// 安全であることを検証します（go test -race で検出）。
func TestRateLimiter_ConcurrentCalls(t *testing.T) {
	t.Parallel()

	// 上限を十分大きくして待機を発生させない
	rl := NewRateLimiter(100000, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rl.WaitIfNeeded()
			}
		}()
	}
	wg.Wait()
}

// TestRateLimiter_WaitsWhenLimitExceeded は上限超過時に次のウィンドウまで
// 待機することを検証します。
func TestRateLimiter_WaitsWhenLimitExceeded(t *testing.T) {
	t.Parallel()

	interval := 100 * time.Millisecond
	rl := NewRateLimiter(2, interval)

	start := time.Now()
	rl.WaitIfNeeded()
	rl.WaitIfNeeded()
	// 3回目は上限超過なのでウィンドウの残り時間だけ待つ
	rl.WaitIfNeeded()
	elapsed := time.Since(start)

	if elapsed < interval/2 {
		t.Errorf("expected third call to wait, elapsed only %v", elapsed)
	}
}

// TestRateLimiter_ResetsAfterInterval はウィンドウ経過後にカウントが
// リセットされ待機しないことを検証します。
func TestRateLimiter_ResetsAfterInterval(t *testing.T) {
	t.Parallel()

	interval := 50 * time.Millisecond
	rl := NewRateLimiter(2, interval)

	rl.WaitIfNeeded()
	rl.WaitIfNeeded()
	time.Sleep(interval + 10*time.Millisecond)

	start := time.Now()
	rl.WaitIfNeeded()
	if elapsed := time.Since(start); elapsed > interval {
		t.Errorf("expected no wait after window reset, waited %v", elapsed)
	}
}
