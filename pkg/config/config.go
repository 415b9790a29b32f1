package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=HTTP server listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Server configuration"`

	Fetch struct {
		Timeout        time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=15s,description=Per-request timeout for outbound fetches"`
		UserAgent      string        `yaml:"user_agent" json:"user_agent" jsonschema:"description=Outbound User-Agent (defaults to a desktop browser profile)"`
		AcceptLanguage string        `yaml:"accept_language" json:"accept_language" jsonschema:"description=Outbound Accept-Language header"`
	} `yaml:"fetch" json:"fetch" jsonschema:"description=Outbound HTTP policy"`

	Cache struct {
		DefaultTTL time.Duration            `yaml:"default_ttl" json:"default_ttl" jsonschema:"default=15m,description=TTL for topics without an explicit entry"`
		Topics     map[string]time.Duration `yaml:"topics" json:"topics" jsonschema:"description=Per-topic TTL overrides"`
	} `yaml:"cache" json:"cache" jsonschema:"description=Topic cache configuration"`

	Schedule struct {
		RefreshInterval time.Duration `yaml:"refresh_interval" json:"refresh_interval" jsonschema:"description=Background refresh interval, 0 disables"`
	} `yaml:"schedule" json:"schedule" jsonschema:"description=Background refresh configuration"`

	TMDB struct {
		APIKey        string  `yaml:"api_key" json:"api_key" jsonschema:"description=TMDB v3 API key (can use environment variable)"`
		Language      string  `yaml:"language" json:"language" jsonschema:"default=ru-RU,description=Response language"`
		MinRating     float64 `yaml:"min_rating" json:"min_rating" jsonschema:"default=7.0,minimum=0,maximum=10,description=Minimum vote average"`
		MinVotesTV    int     `yaml:"min_votes_tv" json:"min_votes_tv" jsonschema:"default=100,description=Minimum vote count for series"`
		MinVotesMovie int     `yaml:"min_votes_movie" json:"min_votes_movie" jsonschema:"default=200,description=Minimum vote count for movies"`
	} `yaml:"tmdb" json:"tmdb" jsonschema:"description=Ranked catalog API configuration"`

	KudaGo struct {
		Location    string `yaml:"location" json:"location" jsonschema:"default=msk,description=City slug"`
		PageSize    int    `yaml:"page_size" json:"page_size" jsonschema:"default=40,description=Events per request"`
		HorizonDays int    `yaml:"horizon_days" json:"horizon_days" jsonschema:"default=30,description=How far ahead to look for events"`
	} `yaml:"kudago" json:"kudago" jsonschema:"description=Events API configuration"`

	Sources struct {
		EventsSite string   `yaml:"events_site" json:"events_site" jsonschema:"description=HTML listing page for the events topic"`
		AgroSites  []string `yaml:"agro_sites" json:"agro_sites" jsonschema:"description=Agro news listing pages"`
		AISites    []string `yaml:"ai_sites" json:"ai_sites" jsonschema:"description=AI/tech news listing pages"`
	} `yaml:"sources" json:"sources" jsonschema:"description=HTML scrape sources"`

	Telegram struct {
		Afisha []string `yaml:"afisha" json:"afisha" jsonschema:"description=Event channels"`
		Agro   []string `yaml:"agro" json:"agro" jsonschema:"description=Agro channels"`
		SVO    []string `yaml:"svo" json:"svo" jsonschema:"description=Conflict news channels"`
	} `yaml:"telegram" json:"telegram" jsonschema:"description=Public telegram channels per topic (without @ or t.me/)"`
}

// Load reads configuration from a YAML file. A missing file is not an error:
// the built-in defaults describe a fully working setup.
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path) //nolint:gosec // file path comes from CLI flag
	switch {
	case os.IsNotExist(err):
		// defaults only
	case err != nil:
		return nil, fmt.Errorf("read config file: %w", err)
	default:
		// expand environment variables
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	setDefaults(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	// verify against embedded schema
	if err := VerifyAgainstEmbeddedSchema(&cfg); err != nil {
		// log warning but don't fail - schema validation is supplementary
		fmt.Printf("warning: schema validation failed: %v\n", err)
	}

	return &cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 15 * time.Second
	}

	if cfg.Cache.DefaultTTL == 0 {
		cfg.Cache.DefaultTTL = 15 * time.Minute
	}
	if cfg.Cache.Topics == nil {
		cfg.Cache.Topics = map[string]time.Duration{
			"afisha": 2 * time.Hour,
			"series": 24 * time.Hour,
			"movies": 24 * time.Hour,
			"agro":   2 * time.Hour,
			"svo":    10 * time.Minute,
			"ai":     time.Hour,
		}
	}

	if cfg.TMDB.APIKey == "" {
		cfg.TMDB.APIKey = os.Getenv("TMDB_API_KEY")
	}
	if cfg.TMDB.Language == "" {
		cfg.TMDB.Language = "ru-RU"
	}
	if cfg.TMDB.MinRating == 0 {
		cfg.TMDB.MinRating = 7.0
	}
	if cfg.TMDB.MinVotesTV == 0 {
		cfg.TMDB.MinVotesTV = 100
	}
	if cfg.TMDB.MinVotesMovie == 0 {
		cfg.TMDB.MinVotesMovie = 200
	}

	if cfg.KudaGo.Location == "" {
		cfg.KudaGo.Location = "msk"
	}
	if cfg.KudaGo.PageSize == 0 {
		cfg.KudaGo.PageSize = 40
	}
	if cfg.KudaGo.HorizonDays == 0 {
		cfg.KudaGo.HorizonDays = 30
	}

	if cfg.Sources.EventsSite == "" {
		cfg.Sources.EventsSite = "https://www.afisha.ru/msk/"
	}
	if cfg.Sources.AgroSites == nil {
		cfg.Sources.AgroSites = []string{
			"https://www.agroinvestor.ru/news/",
			"https://www.agroxxi.ru/novosti.html",
			"https://mcx.gov.ru/press-service/news/",
		}
	}
	if cfg.Sources.AISites == nil {
		cfg.Sources.AISites = []string{
			"https://techcrunch.com/tag/artificial-intelligence/",
			"https://venturebeat.com/category/ai/",
			"https://www.technologyreview.com/topic/artificial-intelligence/",
			"https://www.theverge.com/artificial-intelligence",
			"https://openai.com/blog/",
			"https://vc.ru/ai",
			"https://rb.ru/tag/iskusstvennyy-intellekt/",
			"https://www.computerra.ru/tag/iskusstvennyj-intellekt/",
		}
	}

	if cfg.Telegram.Afisha == nil {
		cfg.Telegram.Afisha = []string{"sysoevfm", "instafoodpassion"}
	}
	if cfg.Telegram.Agro == nil {
		cfg.Telegram.Agro = []string{"svoe_fermerstvo", "agro_nomika", "agroinvestor", "mcxae", "mcx_ru"}
	}
	if cfg.Telegram.SVO == nil {
		cfg.Telegram.SVO = []string{"bloodysx", "bbbreaking", "Alexey_Pivo_varov", "mash"}
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.Fetch.Timeout < time.Second {
		return fmt.Errorf("fetch timeout must be at least 1 second")
	}
	if cfg.Cache.DefaultTTL <= 0 {
		return fmt.Errorf("cache default_ttl must be positive")
	}
	for topic, ttl := range cfg.Cache.Topics {
		if ttl <= 0 {
			return fmt.Errorf("cache ttl for topic %q must be positive", topic)
		}
	}
	if cfg.TMDB.MinRating < 0 || cfg.TMDB.MinRating > 10 {
		return fmt.Errorf("tmdb.min_rating must be between 0 and 10")
	}
	if cfg.KudaGo.PageSize < 1 {
		return fmt.Errorf("kudago.page_size must be at least 1")
	}
	return nil
}

// TTL returns the cache window for a topic, falling back to the default for
// unknown topics so the cache never hard-fails on an unexpected key.
func (c *Config) TTL(topic string) time.Duration {
	if ttl, ok := c.Cache.Topics[topic]; ok {
		return ttl
	}
	return c.Cache.DefaultTTL
}

// GetServerConfig returns server configuration
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}
