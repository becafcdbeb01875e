package config

import (
	"strings"
	"time"

	"github.com/cristalhq/aconfig"
	"github.com/cristalhq/aconfig/aconfigyaml"
	"github.com/go-faster/errors"
)

const (
	defaultRPS      = 5
	defaultBurst    = 5
	defaultMCPRPS   = 2
	defaultMCPBurst = 5
)

// Config holds settings shared by the TUI and the MCP binaries, loadable from
// environment variables (SHOPTUI_ prefix), flags, or shoptui.yaml.
type Config struct {
	BaseURL  string        `env:"BASE_URL" flag:"base-url" yaml:"base_url" default:"https://dummyjson.com" usage:"Catalog API base URL"`
	Timeout  time.Duration `env:"TIMEOUT" flag:"timeout" yaml:"timeout" default:"10s" usage:"HTTP timeout for catalog requests"`
	RPS      float64       `env:"RPS" flag:"rps" yaml:"rps" default:"5" usage:"Max outbound catalog requests per second"`
	Burst    int           `env:"BURST" flag:"burst" yaml:"burst" default:"5" usage:"Outbound request burst"`
	LogFile  string        `env:"LOG_FILE" flag:"log-file" yaml:"log_file" usage:"Write logs to this file (TUI discards logs when empty)"`
	LogLevel string        `env:"LOG_LEVEL" flag:"log-level" yaml:"log_level" default:"info" usage:"debug, info, warn or error"`
	MCP      MCPConfig     `env:"MCP" flag:"mcp" yaml:"mcp"`
}

// MCPConfig controls the MCP HTTP transport.
type MCPConfig struct {
	Port           string        `env:"PORT" flag:"port" yaml:"port" default:"8080" usage:"MCP HTTP listen port"`
	AllowedOrigins []string      `env:"ALLOWED_ORIGINS" flag:"allowed-origins" yaml:"allowed_origins" usage:"Browser origins allowed to call /mcp"`
	Stateless      bool          `env:"STATELESS" flag:"stateless" yaml:"stateless" default:"false" usage:"Serve MCP without sessions"`
	SessionTimeout time.Duration `env:"SESSION_TIMEOUT" flag:"session-timeout" yaml:"session_timeout" default:"15m" usage:"Idle MCP session timeout"`
	RPS            float64       `env:"RPS" flag:"rps" yaml:"rps" default:"2" usage:"Max inbound MCP requests per second"`
	Burst          int           `env:"BURST" flag:"burst" yaml:"burst" default:"5" usage:"Inbound request burst"`
}

// Load reads configuration from defaults, shoptui.yaml, SHOPTUI_* env vars and flags.
func Load() (*Config, error) {
	return load(aconfig.Config{
		EnvPrefix: "SHOPTUI",
		Files:     []string{"shoptui.yaml"},
		FileDecoders: map[string]aconfig.FileDecoder{
			".yaml": aconfigyaml.New(),
		},
	})
}

func load(acfg aconfig.Config) (*Config, error) {
	var cfg Config
	if err := aconfig.LoaderFor(&cfg, acfg).Load(); err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	cfg.normalize()

	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required: set SHOPTUI_BASE_URL")
	}
	return &cfg, nil
}

func (c *Config) normalize() {
	c.BaseURL = strings.TrimRight(strings.TrimSpace(c.BaseURL), "/")
	c.MCP.Port = strings.TrimSpace(c.MCP.Port)

	if c.RPS <= 0 {
		c.RPS = defaultRPS
	}
	if c.Burst <= 0 {
		c.Burst = defaultBurst
	}
	if c.MCP.RPS <= 0 {
		c.MCP.RPS = defaultMCPRPS
	}
	if c.MCP.Burst <= 0 {
		c.MCP.Burst = defaultMCPBurst
	}

	origins := make([]string, 0, len(c.MCP.AllowedOrigins))
	for _, o := range c.MCP.AllowedOrigins {
		if v := strings.TrimSpace(o); v != "" {
			origins = append(origins, v)
		}
	}
	c.MCP.AllowedOrigins = origins
}
