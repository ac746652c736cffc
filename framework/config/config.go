package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/km-arc/go-injector/framework/container"
	"github.com/km-arc/go-injector/framework/validation"
)

// DefaultMooSound is what the example Moo says unless MOO_SOUND is set.
const DefaultMooSound = "moooooooooo blhlhlhl"

// Config is the central typed configuration struct.
type Config struct {
	App     AppConfig
	Log     LogConfig
	Example ExampleConfig
}

type AppConfig struct {
	Name  string
	Env   string // local | testing | production
	Debug bool
	Port  string
}

type LogConfig struct {
	Level string // debug | info | warn | error
}

// ExampleConfig drives the bindings registered by the example provider.
type ExampleConfig struct {
	MooSound string
	BarMode  string // instance | cache_instance | factory_function
}

// Load reads .env (if present) and populates a Config from environment variables.
// Call once at bootstrap: cfg := config.Load()
func Load(envFiles ...string) *Config {
	files := envFiles
	if len(files) == 0 {
		files = []string{".env"}
	}
	// Non-fatal: .env may not exist in production
	_ = godotenv.Load(files...)

	return &Config{
		App: AppConfig{
			Name:  env("APP_NAME", "GoInjector"),
			Env:   env("APP_ENV", "local"),
			Debug: envBool("APP_DEBUG", true),
			Port:  env("APP_PORT", "8000"),
		},
		Log: LogConfig{
			Level: env("LOG_LEVEL", "info"),
		},
		Example: ExampleConfig{
			MooSound: env("MOO_SOUND", DefaultMooSound),
			BarMode:  env("BAR_MODE", string(container.Instance)),
		},
	}
}

// Validate checks the loaded values. The returned error is a
// *validation.Errors keyed by environment variable name.
func (c *Config) Validate() error {
	v := validation.Make(map[string]string{
		"APP_NAME":  c.App.Name,
		"APP_ENV":   c.App.Env,
		"APP_PORT":  c.App.Port,
		"LOG_LEVEL": c.Log.Level,
		"BAR_MODE":  c.Example.BarMode,
	}, validation.Rules{
		"APP_NAME":  "required|max:64",
		"APP_ENV":   "required|in:local,testing,production",
		"APP_PORT":  "required|integer|range:1,65535",
		"LOG_LEVEL": "required|in:debug,info,warn,error",
		"BAR_MODE":  "required|in:instance,cache_instance,factory_function",
	})
	if v.Fails() {
		return v.Errors()
	}
	return nil
}

// BarMode returns the parsed Example.BarMode.
func (c *Config) BarMode() (container.Mode, error) {
	return container.ParseMode(c.Example.BarMode)
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool { return c.App.Env == "production" }

// Get returns a raw env value, falling back to defaultVal.
func Get(key, defaultVal string) string {
	return env(key, defaultVal)
}

// GetInt returns an int env value.
func GetInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

// GetBool returns a bool env value.
func GetBool(key string, defaultVal bool) bool {
	return envBool(key, defaultVal)
}

// ── helpers ─────────────────────────────────────────────────────────────────

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
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
