package model

import "time"

// Config is the full runtime configuration. The synthesis core consumes only
// RunConfig; the rest configures the optional collaborators (link verifier,
// LLM narrative, output rendering).
type Config struct {
	Run    RunConfig    `yaml:"run"`
	Verify VerifyConfig `yaml:"verify"`
	LLM    LLMConfig    `yaml:"llm"`
	Output OutputConfig `yaml:"output"`
}

// RunConfig configures a single synthesis run
type RunConfig struct {
	Region       string    `yaml:"region"`
	TopN         int       `yaml:"top_n"`
	PeriodMonths int       `yaml:"period_months"`
	MinEvidence  int       `yaml:"min_evidence"` // Sources required to keep a competitor
	Lang         string    `yaml:"lang"`         // Locale code or "auto"
	LangSource   string    `yaml:"lang_source"`  // brief | input | both
	Weights      []float64 `yaml:"weights"`      // Six rubric weights, order = model.Dimensions
}

// VerifyConfig configures the evidence link verifier
type VerifyConfig struct {
	Timeout           time.Duration `yaml:"timeout"`
	Workers           int           `yaml:"workers"`
	RequestsPerSecond float64       `yaml:"requests_per_second"`
	BurstSize         int           `yaml:"burst_size"`
	UserAgent         string        `yaml:"user_agent"`
	RespectRobots     bool          `yaml:"respect_robots"`
	FetchTitles       bool          `yaml:"fetch_titles"` // GET pages to fill missing evidence titles
	MaxBodyBytes      int64         `yaml:"max_body_bytes"`
	CacheEnabled      bool          `yaml:"cache_enabled"`
	CacheDir          string        `yaml:"cache_dir"`
	CacheTTL          time.Duration `yaml:"cache_ttl"`
	HTTPProxy         string        `yaml:"http_proxy"`
	HTTPSProxy        string        `yaml:"https_proxy"`
	NoProxy           string        `yaml:"no_proxy"`
	InsecureTLS       bool          `yaml:"insecure_tls"`
}

// LLMConfig configures the optional narrative generator
type LLMConfig struct {
	Provider       string `yaml:"provider"` // openai | anthropic | ollama, "" disables
	Model          string `yaml:"model"`
	APIKey         string `yaml:"-"` // From environment only, never persisted
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	StrictEvidence bool   `yaml:"strict_evidence"`
	MaxTokens      int    `yaml:"max_tokens"`
}

// OutputConfig configures rendering
type OutputConfig struct {
	Verbose  bool   `yaml:"verbose"`
	JSONPath string `yaml:"json"`
	XLSXPath string `yaml:"xlsx"`
}

// DefaultWeights is the fixed rubric default:
// Traction 20, Capability 30, Monetization 15, Sentiment 20, Execution 10, Evidence 5
var DefaultWeights = []float64{20, 30, 15, 20, 10, 5}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Run: RunConfig{
			Region:       "global",
			TopN:         8,
			PeriodMonths: 24,
			MinEvidence:  2,
			Lang:         "auto",
			LangSource:   "both",
			Weights:      append([]float64(nil), DefaultWeights...),
		},
		Verify: VerifyConfig{
			Timeout:           10 * time.Second,
			Workers:           20,
			RequestsPerSecond: 2.0,
			BurstSize:         5,
			UserAgent:         "compbench/0.1 (+https://github.com/haowu77/competitive-analysis-skill)",
			RespectRobots:     true,
			FetchTitles:       false,
			MaxBodyBytes:      2_000_000,
			CacheEnabled:      true,
			CacheTTL:          24 * time.Hour,
		},
		LLM: LLMConfig{
			Provider:       "", // Disabled by default
			TimeoutSeconds: 30,
			StrictEvidence: true,
			MaxTokens:      1000,
		},
		Output: OutputConfig{},
	}
}
