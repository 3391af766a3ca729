package app

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
)

// Config is loaded from BACKEND_* environment variables, optionally layered
// over a YAML file. Keys in the file use the same names without the prefix,
// e.g. storage_driver: badger.
type Config struct {
	StorageDriver string `mapstructure:"storage_driver"` // memory, sqlite or badger (default: sqlite)
	DatabaseFile  string `mapstructure:"database_file"`  // sqlite file (default: ./backend.db)
	BadgerDir     string `mapstructure:"badger_dir"`     // badger directory (default: ./badger)
	KeyPrefix     string `mapstructure:"key_prefix"`     // prefix for every record key (default: ironclad_)
	PepperFile    string `mapstructure:"pepper_file"`    // pepper for password digests (default: ./pepper)

	RequireVerified         bool          `mapstructure:"require_verified"`          // gate data collections on verified email (default: true)
	TrustClientVerification bool          `mapstructure:"trust_client_verification"` // allow clients to set codes or mark verified (default: false)
	Issuer                  string        `mapstructure:"issuer"`                    // origin token issuer (default: task-queue-backend)
	OriginTokenTTL          time.Duration `mapstructure:"origin_token_ttl"`          // origin token lifetime (default: 8760h)

	Env                 string        `mapstructure:"env"`                   // dev, staging, prod (default: dev)
	LogLevel            string        `mapstructure:"log_level"`             // debug, info, warn, error (default: info)
	LogFormat           string        `mapstructure:"log_format"`            // json or text (default: json)
	Port                int           `mapstructure:"port"`                  // HTTP port (default: 8080)
	ShutdownGracePeriod time.Duration `mapstructure:"shutdown_grace_period"` // graceful shutdown timeout (default: 10s)
}

// DevMode reports whether the server runs in the dev environment.
func (c Config) DevMode() bool { return c.Env == "dev" }

// unprefixed keys are shared with the other services and read without the
// BACKEND_ prefix.
var unprefixed = map[string]string{
	"env":                   "ENV",
	"log_level":             "LOG_LEVEL",
	"log_format":            "LOG_FORMAT",
	"port":                  "PORT",
	"shutdown_grace_period": "SHUTDOWN_GRACE_PERIOD",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage_driver", DriverSQLite)
	v.SetDefault("database_file", "backend.db")
	v.SetDefault("badger_dir", "badger")
	v.SetDefault("key_prefix", "ironclad_")
	v.SetDefault("pepper_file", "pepper")
	v.SetDefault("require_verified", true)
	v.SetDefault("trust_client_verification", false)
	v.SetDefault("issuer", "task-queue-backend")
	v.SetDefault("origin_token_ttl", 365*24*time.Hour)
	v.SetDefault("env", "dev")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "json")
	v.SetDefault("port", 8080)
	v.SetDefault("shutdown_grace_period", 10*time.Second)
}

// LoadConfig reads the configuration. BACKEND_CONFIG names a YAML file that
// must exist; otherwise backend.yaml is looked up in /etc/task-queue and the
// working directory and skipped when absent.
func LoadConfig() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("backend")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range unprefixed {
		if err := v.BindEnv(key, env); err != nil {
			return Config{}, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	if path := os.Getenv("BACKEND_CONFIG"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("backend")
		v.SetConfigType("yaml")
		v.AddConfigPath("/etc/task-queue/")
		v.AddConfigPath(".")

		var notFound viper.ConfigFileNotFoundError
		if err := v.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StorageDriver {
	case DriverMemory, DriverSQLite, DriverBadger:
	default:
		return fmt.Errorf("unknown storage driver %q", c.StorageDriver)
	}
	if c.OriginTokenTTL <= 0 {
		return errors.New("origin token ttl must be positive")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}
