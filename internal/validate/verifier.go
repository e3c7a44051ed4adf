package validate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/net/html"

	"github.com/haowu77/competitive-analysis-skill/internal/cache"
	"github.com/haowu77/competitive-analysis-skill/internal/model"
	"github.com/haowu77/competitive-analysis-skill/internal/util"
	"github.com/haowu77/competitive-analysis-skill/internal/worker"
)

const verifyMaxRetries = 3

// verifySleepFunc is the sleep function used between retries (injectable for tests)
var verifySleepFunc = time.Sleep

// Verifier checks evidence links concurrently: accessibility, staleness,
// robots compliance, and optionally the page title for evidence rows that
// arrived without one. Results never feed the confidence computation.
type Verifier struct {
	httpClient   *http.Client
	cfg          model.VerifyConfig
	limiter      *worker.Limiter
	robots       *util.RobotsChecker
	store        cache.Cache
	periodMonths int
}

// NewVerifier creates a verifier from config. A nil store disables caching.
func NewVerifier(cfg model.VerifyConfig, periodMonths int, store cache.Cache) *Verifier {
	proxyFunc := util.NewProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy, cfg.NoProxy)

	v := &Verifier{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: proxyFunc,
			},
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		cfg:          cfg,
		limiter:      worker.NewLimiter(cfg.RequestsPerSecond, cfg.BurstSize),
		store:        store,
		periodMonths: periodMonths,
	}
	if cfg.RespectRobots {
		v.robots = util.NewRobotsChecker(cfg.UserAgent, cfg.Timeout)
	}
	return v
}

// Verify checks all evidence links concurrently, bounded by the configured
// worker count. Result order matches input order.
func (v *Verifier) Verify(ctx context.Context, evidence []model.Evidence) ([]model.VerificationResult, error) {
	if len(evidence) == 0 {
		return []model.VerificationResult{}, nil
	}

	results := make([]model.VerificationResult, len(evidence))
	var wg sync.WaitGroup

	workers := v.cfg.Workers
	if workers <= 0 {
		workers = 20
	}
	semaphore := make(chan struct{}, workers)

	for i, ev := range evidence {
		wg.Add(1)
		go func(idx int, e model.Evidence) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				results[idx] = model.VerificationResult{
					URL:     e.URL,
					Product: e.Product,
					Error:   "context cancelled",
				}
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			results[idx] = v.verifySingleWithRetry(ctx, e)
		}(i, ev)
	}

	wg.Wait()
	return results, nil
}

// verifySingle checks one evidence link
func (v *Verifier) verifySingle(ctx context.Context, ev model.Evidence) model.VerificationResult {
	result := model.VerificationResult{
		URL:     ev.URL,
		Product: ev.Product,
	}
	if ev.URL == "" {
		result.Error = "no URL"
		result.IsDead = true
		return result
	}

	if cached, ok := v.cachedResult(ev.URL); ok {
		return *cached
	}

	var crawlDelay time.Duration
	if v.robots != nil {
		allowed, delay, err := v.robots.CanFetch(ctx, ev.URL)
		if err == nil && !allowed {
			result.RobotsDenied = true
			v.cacheResult(&result)
			return result
		}
		crawlDelay = delay
	}

	if err := v.limiter.WaitWithDelay(ctx, ev.URL, crawlDelay); err != nil {
		result.Error = fmt.Sprintf("rate limit: %v", err)
		return result
	}

	method := http.MethodHead
	if v.cfg.FetchTitles && ev.Title == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, ev.URL, nil)
	if err != nil {
		result.Error = fmt.Sprintf("create request: %v", err)
		result.IsDead = true
		return result
	}
	req.Header.Set("User-Agent", v.cfg.UserAgent)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		result.Error = fmt.Sprintf("request failed: %v", err)
		result.IsDead = true
		return result
	}
	defer func() { _ = resp.Body.Close() }()

	result.StatusCode = resp.StatusCode
	if resp.StatusCode >= 200 && resp.StatusCode < 400 {
		result.IsAccessible = true
	} else if resp.StatusCode == 404 || resp.StatusCode == 410 {
		result.IsDead = true
	}

	if resp.Request.URL.String() != ev.URL {
		result.RedirectURL = resp.Request.URL.String()
	}

	if lastModified := resp.Header.Get("Last-Modified"); lastModified != "" {
		if t, err := time.Parse(time.RFC1123, lastModified); err == nil {
			result.LastModified = &t
			ageDays := int(time.Since(t).Hours() / 24)
			result.AgeDays = &ageDays
			result.IsStale = ageDays > v.periodMonths*30
		}
	}

	if method == http.MethodGet && result.IsAccessible {
		body, err := io.ReadAll(io.LimitReader(resp.Body, v.cfg.MaxBodyBytes))
		if err == nil {
			result.Title = extractTitle(string(body))
		}
	}

	v.cacheResult(&result)
	return result
}

// verifySingleWithRetry retries transient failures with exponential backoff
func (v *Verifier) verifySingleWithRetry(ctx context.Context, ev model.Evidence) model.VerificationResult {
	var result model.VerificationResult
	for attempt := 0; attempt < verifyMaxRetries; attempt++ {
		result = v.verifySingle(ctx, ev)
		if !isRetryable(result) {
			return result
		}
		if attempt < verifyMaxRetries-1 {
			backoff := time.Duration(1<<uint(attempt)) * time.Second
			verifySleepFunc(backoff)
		}
	}
	return result
}

// isRetryable returns true for results that indicate transient failures
func isRetryable(result model.VerificationResult) bool {
	if result.StatusCode >= 500 && result.StatusCode < 600 {
		return true
	}
	if result.StatusCode == 429 {
		return true
	}
	if result.Error != "" {
		s := strings.ToLower(result.Error)
		return strings.Contains(s, "timeout") ||
			strings.Contains(s, "connection refused") ||
			strings.Contains(s, "connection reset")
	}
	return false
}

func (v *Verifier) cachedResult(url string) (*model.VerificationResult, bool) {
	if v.store == nil {
		return nil, false
	}
	data, ok := v.store.Get(cache.CacheKey(url))
	if !ok {
		return nil, false
	}
	var result model.VerificationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, false
	}
	return &result, true
}

func (v *Verifier) cacheResult(result *model.VerificationResult) {
	if v.store == nil {
		return
	}
	data, err := json.Marshal(result)
	if err != nil {
		return
	}
	_ = v.store.Set(cache.CacheKey(result.URL), data, v.cfg.CacheTTL)
}

// extractTitle pulls the first <title> text out of an HTML document
func extractTitle(htmlContent string) string {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return ""
	}
	var title string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if title != "" {
			return
		}
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return title
}
