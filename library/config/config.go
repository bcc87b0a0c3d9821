package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"

	"github.com/openshelf/library-api/library/internal/server"
	"github.com/openshelf/library-api/pkg/kafka"
	"github.com/openshelf/library-api/pkg/logger"
	"github.com/openshelf/library-api/pkg/postgres"
)

type Fine struct {
	RatePerDay     int64   `envconfig:"FINE_RATE_PER_DAY" default:"5000"`
	DamageFraction float64 `envconfig:"FINE_DAMAGE_FRACTION" default:"0.3"`
	ExtendDays     int     `envconfig:"BORROW_EXTEND_DAYS" default:"7"`
}

type Config struct {
	Server   server.Config
	Database postgres.Config
	Kafka    kafka.Config
	Fine     Fine
	Log      logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		if err := envconfig.Process("", &config); err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = &config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg *Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}
