package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

func Init() {
	fmt.Println("Initializing configuration...")
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded (%v). Using defaults and process environment.", err)
	} else {
		log.Println("Loaded .env file successfully")
	}

	if err := Load(&AppConfig); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
}

// Load applies the optional TOML file named by CONFIG_FILE and then the
// environment overrides on top of cfg.
func Load(cfg *Config) error {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := LoadFile(path, cfg); err != nil {
			return err
		}
		cfg.ConfigFile = path
	}
	return ApplyEnv(cfg)
}

type Config struct {
	UserToken       string
	APIBase         string
	Endpoints       map[string]string
	ListenAddr      string
	RequestTimeout  time.Duration
	RetryDelay      time.Duration
	MaxRetries      int
	AuthTokenExpiry time.Duration
	HighRiskLimit   int
	PageTTL         time.Duration
	ConfigFile      string
}

var AppConfig = Config{
	UserToken: "",
	APIBase:   "https://jsonplaceholder.typicode.com",
	Endpoints: map[string]string{
		"AUTH":     "",
		"STUDENTS": "/users",
	},
	ListenAddr:      ":3000",
	RequestTimeout:  30 * time.Second,
	RetryDelay:      2000 * time.Millisecond,
	MaxRetries:      0,
	AuthTokenExpiry: 60 * time.Minute,
	HighRiskLimit:   2,
	PageTTL:         30 * time.Minute,
}

type fileConfig struct {
	APIBase         string            `toml:"api_base"`
	UserToken       string            `toml:"user_token"`
	ListenAddr      string            `toml:"listen_addr"`
	RequestTimeout  string            `toml:"request_timeout"`
	AuthTokenExpiry string            `toml:"auth_token_expiry"`
	HighRiskLimit   *int              `toml:"high_risk_limit"`
	PageTTL         string            `toml:"page_ttl"`
	Endpoints       map[string]string `toml:"endpoints"`
}

func LoadFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}

	if fc.APIBase != "" {
		cfg.APIBase = fc.APIBase
	}
	if fc.UserToken != "" {
		cfg.UserToken = fc.UserToken
	}
	if fc.ListenAddr != "" {
		cfg.ListenAddr = fc.ListenAddr
	}
	if fc.HighRiskLimit != nil {
		if *fc.HighRiskLimit < 0 {
			return fmt.Errorf("high_risk_limit must not be negative, got %d", *fc.HighRiskLimit)
		}
		cfg.HighRiskLimit = *fc.HighRiskLimit
	}
	for name, value := range map[string]string{
		"request_timeout":   fc.RequestTimeout,
		"auth_token_expiry": fc.AuthTokenExpiry,
		"page_ttl":          fc.PageTTL,
	} {
		if value == "" {
			continue
		}
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid %s '%s' in config file: %w", name, value, err)
		}
		switch name {
		case "request_timeout":
			cfg.RequestTimeout = d
		case "auth_token_expiry":
			cfg.AuthTokenExpiry = d
		case "page_ttl":
			cfg.PageTTL = d
		}
	}

	if len(fc.Endpoints) > 0 {
		endpoints := make(map[string]string, len(cfg.Endpoints)+len(fc.Endpoints))
		for k, v := range cfg.Endpoints {
			endpoints[k] = v
		}
		for k, v := range fc.Endpoints {
			endpoints[k] = v
		}
		cfg.Endpoints = endpoints
	}

	log.Printf("Loaded config file '%s'", path)
	return nil
}

func ApplyEnv(cfg *Config) error {
	if v := os.Getenv("USER_TOKEN"); v != "" {
		cfg.UserToken = v
	}
	if v := os.Getenv("API_BASE"); v != "" {
		cfg.APIBase = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid REQUEST_TIMEOUT '%s': %w", v, err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv("PAGE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid PAGE_TTL '%s': %w", v, err)
		}
		cfg.PageTTL = d
	}
	if v := os.Getenv("HIGH_RISK_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return fmt.Errorf("invalid HIGH_RISK_LIMIT '%s': must be a non-negative integer", v)
		}
		cfg.HighRiskLimit = n
	}
	return nil
}

func (c *Config) StudentsURL() string {
	return c.APIBase + c.Endpoints["STUDENTS"]
}
