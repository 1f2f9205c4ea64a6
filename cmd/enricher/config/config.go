package config

import "time"

// Config holds application configuration.
type Config struct {
	DatabaseURL string        `env:"DATABASE_URL,required"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`
	UserAgent   string        `env:"USER_AGENT" envDefault:"parts-enricher/0.1.0"`

	HTTP        HTTP
	RabbitMQ    RabbitMQ
	Marketplace Marketplace
	WebSearch   WebSearch
	Catalog     Catalog
	Completion  Completion
	Processing  Processing
}

// HTTP holds HTTP server configuration.
type HTTP struct {
	Addr            string        `env:"HTTP_ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// RabbitMQ holds RabbitMQ configuration.
// Commands are disabled when URL is empty.
type RabbitMQ struct {
	URL        string `env:"RABBITMQ_URL"`
	Exchange   string `env:"RABBITMQ_EXCHANGE" envDefault:"pe-ex"`
	Queue      string `env:"RABBITMQ_QUEUE" envDefault:"parts-enricher.commands"`
	RoutingKey string `env:"RABBITMQ_ROUTING_KEY" envDefault:"process-batch"`
	Prefetch   int    `env:"RABBITMQ_PREFETCH" envDefault:"1"`
}

// Marketplace holds eBay APIs configuration.
type Marketplace struct {
	SearchURL     string        `env:"EBAY_SEARCH_URL" envDefault:"https://api.ebay.com/buy/browse/v1/item_summary/search"`
	TradingURL    string        `env:"EBAY_TRADING_URL" envDefault:"https://api.ebay.com/ws/api.dll"`
	OAuthURL      string        `env:"EBAY_OAUTH_URL" envDefault:"https://api.ebay.com/identity/v1/oauth2/token"`
	AccessToken   string        `env:"EBAY_ACCESS_TOKEN"`
	ClientID      string        `env:"EBAY_CLIENT_ID"`
	ClientSecret  string        `env:"EBAY_CLIENT_SECRET"`
	DevID         string        `env:"EBAY_DEV_ID"`
	MarketplaceID string        `env:"EBAY_MARKETPLACE_ID" envDefault:"EBAY_DE"`
	CategoryID    string        `env:"EBAY_CATEGORY_ID" envDefault:"131090"`
	Limit         int           `env:"EBAY_LIMIT" envDefault:"10"`
	RPS           float64       `env:"EBAY_RPS" envDefault:"2"`
	CacheSize     int           `env:"EBAY_CACHE_SIZE" envDefault:"1000"`
	CacheTTL      time.Duration `env:"EBAY_CACHE_TTL" envDefault:"1h"`
}

// WebSearch holds Google Custom Search configuration.
type WebSearch struct {
	BaseURL        string  `env:"GOOGLE_SEARCH_URL" envDefault:"https://www.googleapis.com/customsearch/v1"`
	APIKey         string  `env:"GOOGLE_API_KEY"`
	SearchEngineID string  `env:"GOOGLE_SEARCH_ENGINE_ID"`
	RPS            float64 `env:"GOOGLE_RPS" envDefault:"1"`
}

// Catalog holds parts catalog scraper configuration.
type Catalog struct {
	Enabled     bool          `env:"CATALOG_ENABLED" envDefault:"true"`
	BaseURL     string        `env:"CATALOG_BASE_URL" envDefault:"https://www.autodoc.de"`
	Timeout     time.Duration `env:"CATALOG_TIMEOUT" envDefault:"20s"`
	Delay       time.Duration `env:"CATALOG_DELAY" envDefault:"1s"`
	RandomDelay time.Duration `env:"CATALOG_RANDOM_DELAY" envDefault:"1s"`
	UserAgent   string        `env:"CATALOG_USER_AGENT" envDefault:"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"`
}

// Completion holds DeepSeek chat completions configuration.
type Completion struct {
	BaseURL     string  `env:"DEEPSEEK_BASE_URL" envDefault:"https://api.deepseek.com"`
	APIKey      string  `env:"DEEPSEEK_API_KEY"`
	Model       string  `env:"DEEPSEEK_MODEL" envDefault:"deepseek-chat"`
	Temperature float64 `env:"DEEPSEEK_TEMPERATURE" envDefault:"0.7"`
	RPS         float64 `env:"DEEPSEEK_RPS" envDefault:"1"`
}

// Processing holds batch orchestrator configuration.
type Processing struct {
	GroupSize  int           `env:"PROCESSING_GROUP_SIZE" envDefault:"3"`
	GroupDelay time.Duration `env:"PROCESSING_GROUP_DELAY" envDefault:"1s"`
	Deadline   time.Duration `env:"PROCESSING_DEADLINE" envDefault:"4m30s"`
}
