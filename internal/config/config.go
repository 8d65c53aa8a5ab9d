package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/currency"
)

const envPrefix = "POSAPI_"

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		Currency string `koanf:"currency"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout    time.Duration `koanf:"read_timeout"`
		WriteTimeout   time.Duration `koanf:"write_timeout"`
		IdleTimeout    time.Duration `koanf:"idle_timeout"`
		RequestTimeout time.Duration `koanf:"request_timeout"`
	} `koanf:"http"`

	Log struct {
		Level      string `koanf:"level"`
		File       string `koanf:"file"`
		MaxSizeMB  int    `koanf:"max_size_mb"`
		MaxBackups int    `koanf:"max_backups"`
		MaxAgeDays int    `koanf:"max_age_days"`
	} `koanf:"log"`

	Storage struct {
		// Driver selects the catalog and cart backend: memory | postgres.
		Driver      string `koanf:"driver"`
		SeedCatalog bool   `koanf:"seed_catalog"`
	} `koanf:"storage"`

	Postgres struct {
		DSN      string `koanf:"dsn"`
		MaxConns int32  `koanf:"max_conns"`
	} `koanf:"postgres"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
		DB       int    `koanf:"db"`
	} `koanf:"redis"`

	Checkout struct {
		// TransferDriver selects the transfer channel backend: memory | redis | postgres.
		TransferDriver  string        `koanf:"transfer_driver"`
		MaxSnapshotAge  time.Duration `koanf:"max_snapshot_age"`
		SubmissionDelay time.Duration `koanf:"submission_delay"`
	} `koanf:"checkout"`
}

// Load reads <dir>/base.yaml, then the optional <dir>/<env>.yaml, then POSAPI_* variables
// (nested keys separated by "__", e.g. POSAPI_POSTGRES__DSN).
func Load(dir, envName string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(file.Provider(filepath.Join(dir, "base.yaml")), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// missing env file is fine for local runs
	_ = k.Load(file.Provider(filepath.Join(dir, envName+".yaml")), yaml.Parser())

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if _, err := c.Currency(); err != nil {
		return err
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn required for storage.driver=postgres")
		}
	default:
		return fmt.Errorf("storage.driver %q not supported", c.Storage.Driver)
	}

	switch c.Checkout.TransferDriver {
	case DriverMemory:
	case DriverPostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("postgres.dsn required for checkout.transfer_driver=postgres")
		}
	case DriverRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("redis.addr required for checkout.transfer_driver=redis")
		}
	default:
		return fmt.Errorf("checkout.transfer_driver %q not supported", c.Checkout.TransferDriver)
	}

	if c.Checkout.MaxSnapshotAge < 0 {
		return fmt.Errorf("checkout.max_snapshot_age must not be negative")
	}
	return nil
}

func (c Config) Currency() (currency.Unit, error) {
	cur, err := currency.ParseISO(c.App.Currency)
	if err != nil {
		return currency.Unit{}, fmt.Errorf("app.currency[%s] is not valid: %w", c.App.Currency, err)
	}
	return cur, nil
}
