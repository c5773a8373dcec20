package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	App      AppConfig
	Redis    RedisConfig
	Session  SessionConfig
	Log      LogConfig
	HTTP     HTTPConfig
	Catalog  CatalogConfig
	Tracking TrackingConfig
	Handoff  HandoffConfig
	Observer ObserverConfig
}

// AppConfig holds application-specific settings
type AppConfig struct {
	Name string
	Env  string
	Port string
}

// RedisConfig holds Redis connection settings
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig holds browser session settings
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, console
	Output string // stdout, stderr, or file path
}

// HTTPConfig holds HTTP server configuration
type HTTPConfig struct {
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	IdleTimeout      time.Duration
	MaxHeaderBytes   int
	CORSAllowOrigins []string
	CORSAllowMethods []string
	CORSAllowHeaders []string
	TrustedProxies   []string
}

// CatalogConfig holds menu catalog settings
type CatalogConfig struct {
	// MenuFile is the path of the JSON menu definition
	MenuFile string
}

// TrackingConfig holds conversion reporting configuration
type TrackingConfig struct {
	// SinkMode selects the analytics sink: "memory" buffers events for
	// the data-layer endpoint, "log" writes them to the structured log
	SinkMode string
	// PixelEnabled toggles the browser-pixel channel
	PixelEnabled bool
	// RelayEnabled toggles the server-side conversion relay
	RelayEnabled bool
	// RelayEndpoint is the full purchase-report URL
	RelayEndpoint string
	// RelayAccessToken is sent as a bearer token when set
	RelayAccessToken string
	// RelayTimeoutSeconds bounds each relay request
	RelayTimeoutSeconds int
}

// HandoffConfig holds messaging handoff configuration
type HandoffConfig struct {
	// StoreNumber is the WhatsApp number that receives orders, in
	// international digits-only form
	StoreNumber string
	// Delay gives conversion reports a head start before the deep link
	// opens
	Delay time.Duration
}

// ObserverConfig holds the section-visibility observation window handed
// to the client. Sections count as visible inside a viewport shrunk by
// the sticky header at the top and a fraction of the height at the
// bottom.
type ObserverConfig struct {
	// TopOffsetPx is the sticky-header height excluded from the window
	TopOffsetPx int
	// BottomExcludedPercent is the viewport-height percentage excluded
	// at the bottom
	BottomExcludedPercent int
}

// RootMargin renders the window as a CSS-style margin string for
// intersection observers
func (o ObserverConfig) RootMargin() string {
	return fmt.Sprintf("-%dpx 0px -%d%% 0px", o.TopOffsetPx, o.BottomExcludedPercent)
}

// Load loads configuration from TOML file and environment variables
// Priority (highest to lowest):
// 1. Environment variables with CARDAPIO_ prefix (e.g., CARDAPIO_REDIS_PASSWORD)
// 2. config.toml
// 3. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")
	v.AddConfigPath("/app")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	v.SetEnvPrefix("CARDAPIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		App: AppConfig{
			Name: v.GetString("app.name"),
			Env:  v.GetString("app.env"),
			Port: v.GetString("app.port"),
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("redis.enabled"),
			Host:     v.GetString("redis.host"),
			Port:     v.GetInt("redis.port"),
			Password: v.GetString("redis.password"),
			DB:       v.GetInt("redis.db"),
		},
		Session: SessionConfig{
			CookieName: v.GetString("session.cookie_name"),
			TTL:        v.GetDuration("session.ttl"),
			Secure:     v.GetBool("session.secure"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
			Output: v.GetString("log.output"),
		},
		HTTP: HTTPConfig{
			ReadTimeout:      v.GetDuration("http.read_timeout"),
			WriteTimeout:     v.GetDuration("http.write_timeout"),
			IdleTimeout:      v.GetDuration("http.idle_timeout"),
			MaxHeaderBytes:   v.GetInt("http.max_header_bytes"),
			CORSAllowOrigins: v.GetStringSlice("http.cors_allow_origins"),
			CORSAllowMethods: v.GetStringSlice("http.cors_allow_methods"),
			CORSAllowHeaders: v.GetStringSlice("http.cors_allow_headers"),
			TrustedProxies:   v.GetStringSlice("http.trusted_proxies"),
		},
		Catalog: CatalogConfig{
			MenuFile: v.GetString("catalog.menu_file"),
		},
		Tracking: TrackingConfig{
			SinkMode:            v.GetString("tracking.sink_mode"),
			PixelEnabled:        v.GetBool("tracking.pixel_enabled"),
			RelayEnabled:        v.GetBool("tracking.relay_enabled"),
			RelayEndpoint:       v.GetString("tracking.relay_endpoint"),
			RelayAccessToken:    v.GetString("tracking.relay_access_token"),
			RelayTimeoutSeconds: v.GetInt("tracking.relay_timeout_seconds"),
		},
		Handoff: HandoffConfig{
			StoreNumber: v.GetString("handoff.store_number"),
			Delay:       v.GetDuration("handoff.delay"),
		},
		Observer: ObserverConfig{
			TopOffsetPx:           v.GetInt("observer.top_offset_px"),
			BottomExcludedPercent: v.GetInt("observer.bottom_excluded_percent"),
		},
	}

	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults sets default values for any empty config fields
func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "cardapio-backend"
	}
	if cfg.App.Env == "" {
		cfg.App.Env = "development"
	}
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}
	if cfg.Redis.Host == "" {
		cfg.Redis.Host = "localhost"
	}
	if cfg.Redis.Port == 0 {
		cfg.Redis.Port = 6379
	}
	if cfg.Session.CookieName == "" {
		cfg.Session.CookieName = "cardapio_session"
	}
	if cfg.Session.TTL == 0 {
		cfg.Session.TTL = 24 * time.Hour
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
	if cfg.HTTP.ReadTimeout == 0 {
		cfg.HTTP.ReadTimeout = 15 * time.Second
	}
	if cfg.HTTP.WriteTimeout == 0 {
		cfg.HTTP.WriteTimeout = 15 * time.Second
	}
	if cfg.HTTP.IdleTimeout == 0 {
		cfg.HTTP.IdleTimeout = 60 * time.Second
	}
	if cfg.HTTP.MaxHeaderBytes == 0 {
		cfg.HTTP.MaxHeaderBytes = 1 << 20 // 1MB
	}
	if len(cfg.HTTP.CORSAllowMethods) == 0 {
		cfg.HTTP.CORSAllowMethods = []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"}
	}
	if len(cfg.HTTP.CORSAllowHeaders) == 0 {
		cfg.HTTP.CORSAllowHeaders = []string{"Content-Type", "X-Request-ID"}
	}
	if cfg.Catalog.MenuFile == "" {
		cfg.Catalog.MenuFile = "menu.json"
	}
	if cfg.Tracking.SinkMode == "" {
		cfg.Tracking.SinkMode = "memory"
	}
	if cfg.Tracking.RelayEndpoint == "" {
		cfg.Tracking.RelayEndpoint = "https://capi.respondipravoce.com.br/track-purchase"
	}
	if cfg.Tracking.RelayTimeoutSeconds == 0 {
		cfg.Tracking.RelayTimeoutSeconds = 10
	}
	if cfg.Handoff.StoreNumber == "" {
		cfg.Handoff.StoreNumber = "5527999999154"
	}
	if cfg.Handoff.Delay == 0 {
		cfg.Handoff.Delay = 800 * time.Millisecond
	}
	if cfg.Observer.TopOffsetPx == 0 {
		cfg.Observer.TopOffsetPx = 128
	}
	if cfg.Observer.BottomExcludedPercent == 0 {
		cfg.Observer.BottomExcludedPercent = 65
	}
}

// validate performs validation on the configuration
func (c *Config) validate() error {
	switch c.Tracking.SinkMode {
	case "memory", "log":
	default:
		return fmt.Errorf("tracking.sink_mode must be 'memory' or 'log', got %q", c.Tracking.SinkMode)
	}

	for _, r := range c.Handoff.StoreNumber {
		if r < '0' || r > '9' {
			return fmt.Errorf("handoff.store_number must contain only digits, got %q", c.Handoff.StoreNumber)
		}
	}

	if c.Observer.BottomExcludedPercent < 0 || c.Observer.BottomExcludedPercent > 100 {
		return fmt.Errorf("observer.bottom_excluded_percent must be between 0 and 100, got %d", c.Observer.BottomExcludedPercent)
	}

	if c.App.Env == "production" {
		if !c.Session.Secure {
			return fmt.Errorf("session.secure must be true in production")
		}
		for _, origin := range c.HTTP.CORSAllowOrigins {
			if origin == "*" {
				return fmt.Errorf("cors_allow_origins cannot be '*' in production (use specific origins)")
			}
		}
	}

	return nil
}

// Addr returns the Redis connection address
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}
