package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is a limit rule matched against an incoming request.
// Path supports a trailing "*" wildcard; Method "*" matches any verb.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config controls limiter behaviour. Endpoints are evaluated in order
// and the first match wins; DefaultLimit applies when nothing matches.
type Config struct {
	Enabled         bool
	DefaultLimit    EndpointConfig
	Endpoints       []EndpointConfig
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	CleanupInterval time.Duration
}

// LoadConfig builds the limiter configuration from environment
// variables, falling back to defaults tuned for the engine's routes.
func LoadConfig() *Config {
	cfg := &Config{
		Enabled: envBool("RATE_LIMIT_ENABLED", true),
		DefaultLimit: EndpointConfig{
			Path:   "*",
			Method: "*",
			Limit:  envInt("RATE_LIMIT_DEFAULT", 120),
			Window: time.Minute,
		},
		Endpoints: []EndpointConfig{
			// Auth endpoints get tight limits to slow credential stuffing.
			{Path: "/auth/login", Method: "POST", Limit: envInt("RATE_LIMIT_LOGIN", 10), Window: time.Minute},
			{Path: "/auth/register", Method: "POST", Limit: envInt("RATE_LIMIT_REGISTER", 5), Window: time.Minute},
			// Resume-based endpoints run extraction over large payloads.
			{Path: "/recommend/resume", Method: "POST", Limit: envInt("RATE_LIMIT_RESUME", 30), Window: time.Minute},
			{Path: "/skill-gap/resume", Method: "POST", Limit: envInt("RATE_LIMIT_RESUME", 30), Window: time.Minute},
			{Path: "/resume-tips", Method: "POST", Limit: envInt("RATE_LIMIT_RESUME", 30), Window: time.Minute},
			{Path: "/chatbot/*", Method: "POST", Limit: envInt("RATE_LIMIT_WEBHOOK", 60), Window: time.Minute},
		},
		Whitelist:       envSet("RATE_LIMIT_WHITELIST"),
		Blacklist:       envSet("RATE_LIMIT_BLACKLIST"),
		CleanupInterval: time.Duration(envInt("RATE_LIMIT_CLEANUP_SECONDS", 300)) * time.Second,
	}
	return cfg
}

func (c *Config) match(path, method string) EndpointConfig {
	for _, ep := range c.Endpoints {
		if matchMethod(ep.Method, method) && matchPath(ep.Path, path) {
			return ep
		}
	}
	return c.DefaultLimit
}

func matchMethod(pattern, method string) bool {
	return pattern == "*" || strings.EqualFold(pattern, method)
}

func matchPath(pattern, path string) bool {
	if pattern == "*" {
		return true
	}
	if strings.HasSuffix(pattern, "*") {
		return strings.HasPrefix(path, strings.TrimSuffix(pattern, "*"))
	}
	return pattern == path
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func envSet(key string) map[string]bool {
	set := make(map[string]bool)
	for _, item := range strings.Split(os.Getenv(key), ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			set[item] = true
		}
	}
	return set
}
