package worker

import (
	"context"
	"net/url"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter throttles outbound requests per host so evidence verification
// stays polite to each source domain.
type Limiter struct {
	mu      sync.Mutex
	byHost  map[string]*rate.Limiter
	perSec  rate.Limit
	burst   int
}

// NewLimiter creates a limiter that allows requestsPerSecond per host
// with the given burst. Burst values below 1 default to 5.
func NewLimiter(requestsPerSecond float64, burst int) *Limiter {
	if burst <= 0 {
		burst = 5
	}
	return &Limiter{
		byHost: make(map[string]*rate.Limiter),
		perSec: rate.Limit(requestsPerSecond),
		burst:  burst,
	}
}

// Wait blocks until the host of rawURL has rate capacity, or ctx ends.
func (l *Limiter) Wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}
	return l.hostLimiter(parsed.Host).Wait(ctx)
}

// WaitWithDelay waits for rate capacity and then sleeps an extra delay,
// typically a robots.txt crawl-delay directive.
func (l *Limiter) WaitWithDelay(ctx context.Context, rawURL string, delay time.Duration) error {
	if err := l.Wait(ctx, rawURL); err != nil {
		return err
	}
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (l *Limiter) hostLimiter(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.byHost[host]
	if !ok {
		lim = rate.NewLimiter(l.perSec, l.burst)
		l.byHost[host] = lim
	}
	return lim
}
