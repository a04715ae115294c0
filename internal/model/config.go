package model

import "time"

// Config is the complete murscan configuration.
// Populated by viper: flags > MURSCAN_* env > config file > defaults.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http" mapstructure:"http"`
	Crawl   CrawlConfig   `yaml:"crawl" mapstructure:"crawl"`
	Filter  FilterConfig  `yaml:"filter" mapstructure:"filter"`
	Extract ExtractConfig `yaml:"extract" mapstructure:"extract"`
	Locate  LocateConfig  `yaml:"locate" mapstructure:"locate"`
	Cache   CacheConfig   `yaml:"cache" mapstructure:"cache"`
	Output  OutputConfig  `yaml:"output" mapstructure:"output"`

	Cities  []string `yaml:"cities" mapstructure:"cities"`
	Queries []string `yaml:"queries" mapstructure:"queries"`
	Sources []Source `yaml:"sources" mapstructure:"sources"`
}

// HTTPConfig controls the fetch layer.
type HTTPConfig struct {
	Timeout      time.Duration `yaml:"timeout" mapstructure:"timeout"`
	UserAgent    string        `yaml:"user_agent" mapstructure:"user_agent"`
	MaxBodyBytes int64         `yaml:"max_body_bytes" mapstructure:"max_body_bytes"`
}

// CrawlConfig bounds the crawl so a badly-behaved site cannot run it forever.
type CrawlConfig struct {
	MaxPagesPerSource int     `yaml:"max_pages_per_source" mapstructure:"max_pages_per_source"`
	MaxLinksPerSearch int     `yaml:"max_links_per_search" mapstructure:"max_links_per_search"`
	Workers           int     `yaml:"workers" mapstructure:"workers"`
	RequestsPerSecond float64 `yaml:"requests_per_second" mapstructure:"requests_per_second"`
	Burst             int     `yaml:"burst" mapstructure:"burst"`
	RespectRobots     bool    `yaml:"respect_robots" mapstructure:"respect_robots"`
}

// FilterConfig holds the qualification thresholds.
type FilterConfig struct {
	MinYieldPct float64 `yaml:"min_yield_pct" mapstructure:"min_yield_pct"`
	PriceMinEUR float64 `yaml:"price_min_eur" mapstructure:"price_min_eur"`
	PriceMaxEUR float64 `yaml:"price_max_eur" mapstructure:"price_max_eur"`
}

// ExtractConfig exposes the label-proximity windows (in characters)
// so they stay tunable instead of hardcoded.
type ExtractConfig struct {
	PriceWindow       int `yaml:"price_window" mapstructure:"price_window"`
	RentWindow        int `yaml:"rent_window" mapstructure:"rent_window"`
	ChargesWindow     int `yaml:"charges_window" mapstructure:"charges_window"`
	TaxWindow         int `yaml:"tax_window" mapstructure:"tax_window"`
	QualitativeWindow int `yaml:"qualitative_window" mapstructure:"qualitative_window"`
}

// LocateConfig configures the location classifier. An empty PrimeAxes
// map falls back to the built-in table; PrimeKeywords are regex
// alternatives for the generic high-traffic-zone heuristic.
type LocateConfig struct {
	PrimeKeywords []string            `yaml:"prime_keywords" mapstructure:"prime_keywords"`
	PrimeAxes     map[string][]string `yaml:"prime_axes" mapstructure:"prime_axes"`
}

// CacheConfig controls the in-memory page cache.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig controls result rendering.
type OutputConfig struct {
	CSVPath string `yaml:"csv_path" mapstructure:"csv_path"` // "" derives a name from the filter
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// DefaultConfig returns the built-in defaults. Window sizes and crawl
// caps match the values the heuristics were tuned with.
func DefaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Timeout:      25 * time.Second,
			UserAgent:    "murscan/0.2 (+https://github.com/pcouzin/murscan)",
			MaxBodyBytes: 2_000_000,
		},
		Crawl: CrawlConfig{
			MaxPagesPerSource: 50,
			MaxLinksPerSearch: 200,
			Workers:           4,
			RequestsPerSecond: 0.8,
			Burst:             1,
			RespectRobots:     true,
		},
		Filter: FilterConfig{
			MinYieldPct: 8.0,
			PriceMinEUR: 0,
			PriceMaxEUR: 1e12,
		},
		Extract: ExtractConfig{
			PriceWindow:       80,
			RentWindow:        90,
			ChargesWindow:     60,
			TaxWindow:         60,
			QualitativeWindow: 80,
		},
		Locate: LocateConfig{},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     1 * time.Hour,
		},
		Output: OutputConfig{},
	}
}
