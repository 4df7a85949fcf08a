package config

import (
	"fmt"
	"net/netip"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// DefaultSecretKey is only acceptable outside production.
	DefaultSecretKey = "dev-secret-key-change-in-production"
)

// Config is passed explicitly into every component at startup.
type Config struct {
	Server    Server    `yaml:"server"`
	Directory Directory `yaml:"directory"`
	Tracker   Tracker   `yaml:"tracker"`
	Letter    Letter    `yaml:"letter"`
}

// Server captures HTTP server level configuration.
type Server struct {
	Addr           string         `yaml:"addr"`
	Environment    string         `yaml:"environment"`
	SecretKey      string         `yaml:"secret_key"`
	TrustedProxies []netip.Prefix `yaml:"-"`
	RequestTimeout time.Duration  `yaml:"request_timeout"`
}

// Directory locates the representatives JSON resource.
type Directory struct {
	Path  string `yaml:"path"`
	Watch bool   `yaml:"watch"`
}

// Tracker configures the submission webhook. An empty URL disables tracking.
type Tracker struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`
}

// Letter selects the template used when no custom letter is supplied.
type Letter struct {
	Template string `yaml:"template"`
}

// IsDevelopment reports whether debug behaviour should be enabled.
func (c Config) IsDevelopment() bool {
	return c.Server.Environment == EnvDevelopment
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Server: Server{
			Addr:           ":5001",
			Environment:    EnvProduction,
			SecretKey:      DefaultSecretKey,
			RequestTimeout: 30 * time.Second,
		},
		Directory: Directory{
			Path: "members_by_country.json",
		},
		Tracker: Tracker{
			Timeout: 10 * time.Second,
		},
		Letter: Letter{
			Template: "ai_risk",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file named by
// MEP_CONFIG_FILE, and environment variables, in increasing precedence.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Default()

	if path := getenv("MEP_CONFIG_FILE"); path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	if port := getenv("PORT"); port != "" {
		if _, err := strconv.Atoi(port); err != nil {
			return Config{}, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Addr = ":" + port
	}
	if addr := getenv("MEP_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}
	if env := getenv("APP_ENV"); env != "" {
		cfg.Server.Environment = strings.ToLower(env)
	}
	if key := getenv("SECRET_KEY"); key != "" {
		cfg.Server.SecretKey = key
	}
	if proxies := getenv("TRUSTED_PROXIES"); proxies != "" {
		parsed, err := parsePrefixes(proxies)
		if err != nil {
			return Config{}, err
		}
		cfg.Server.TrustedProxies = parsed
	}

	if path := getenv("MEP_DIRECTORY_PATH"); path != "" {
		cfg.Directory.Path = path
	}
	if watch := getenv("MEP_DIRECTORY_WATCH"); watch != "" {
		cfg.Directory.Watch = watch == "true"
	}

	if url := getenv("GOOGLE_APPS_SCRIPT_URL"); url != "" {
		cfg.Tracker.URL = url
	}
	if timeout := getenv("TRACKER_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil {
			return Config{}, fmt.Errorf("invalid TRACKER_TIMEOUT %q: %w", timeout, err)
		}
		cfg.Tracker.Timeout = d
	}

	if tmpl := getenv("LETTER_TEMPLATE"); tmpl != "" {
		cfg.Letter.Template = tmpl
	}

	return cfg, nil
}

func parsePrefixes(raw string) ([]netip.Prefix, error) {
	var prefixes []netip.Prefix
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		prefix, err := netip.ParsePrefix(part)
		if err != nil {
			return nil, fmt.Errorf("invalid TRUSTED_PROXIES entry %q: %w", part, err)
		}
		prefixes = append(prefixes, prefix)
	}
	return prefixes, nil
}
