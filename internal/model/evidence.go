package model

import "time"

// SourceType classifies where a piece of evidence came from
type SourceType string

const (
	SourceOfficial SourceType = "official" // Vendor site, docs, changelog
	SourceStore    SourceType = "store"    // App store / marketplace listing
	SourceReview   SourceType = "review"   // Review platforms (G2, Capterra, ...)
	SourceMedia    SourceType = "media"    // Press and media coverage
	SourceResearch SourceType = "research" // Analyst and research reports
)

// IsThirdParty reports whether the source is independent of the vendor
func (s SourceType) IsThirdParty() bool {
	return s == SourceStore || s == SourceReview || s == SourceMedia || s == SourceResearch
}

// IsStrongThirdParty reports third-party types that carry corroborating weight
// on their own (reviews and research, as opposed to store blurbs or press)
func (s SourceType) IsStrongThirdParty() bool {
	return s == SourceReview || s == SourceResearch
}

// Evidence is a cited source backing a competitor's row
type Evidence struct {
	Product    string     `json:"product"`               // Competitor the citation belongs to
	SourceType SourceType `json:"source_type,omitempty"` // Empty when unrecognized
	URL        string     `json:"url"`
	Title      string     `json:"title,omitempty"`
	Claim      string     `json:"claim,omitempty"`
	Snippet    string     `json:"evidence_snippet,omitempty"`

	// PublishedDate is optional; AccessDate is mandatory per the data contract.
	// Both are absolute calendar dates; zero time means absent.
	PublishedDate time.Time `json:"published_date,omitempty"`
	AccessDate    time.Time `json:"access_date,omitempty"`

	Confidence ConfidenceLevel `json:"confidence,omitempty"` // Per-citation label for the Sources sheet
}

// HasValidAccessDate reports whether the mandatory access date is present
func (e *Evidence) HasValidAccessDate() bool {
	return !e.AccessDate.IsZero()
}

// IsStale reports whether the evidence falls outside the lookback window
// ending at ref. Evidence without an access date is treated as stale.
func (e *Evidence) IsStale(ref time.Time, periodMonths int) bool {
	if e.AccessDate.IsZero() {
		return true
	}
	return e.AccessDate.Before(ref.AddDate(0, -periodMonths, 0))
}

// VerificationResult contains the result of checking an evidence link over
// the network. Verification is an optional collaborator step and never feeds
// the deterministic confidence computation.
type VerificationResult struct {
	URL          string     `json:"url"`
	Product      string     `json:"product,omitempty"`
	IsAccessible bool       `json:"is_accessible"`
	StatusCode   int        `json:"status_code,omitempty"`
	LastModified *time.Time `json:"last_modified,omitempty"`
	AgeDays      *int       `json:"age_days,omitempty"`
	IsStale      bool       `json:"is_stale"` // Older than the lookback window
	IsDead       bool       `json:"is_dead"`  // 404, 410, or timeout
	RedirectURL  string     `json:"redirect_url,omitempty"`
	Title        string     `json:"title,omitempty"` // Page title, when fetched
	RobotsDenied bool       `json:"robots_denied,omitempty"`
	Error        string     `json:"error,omitempty"`
}
