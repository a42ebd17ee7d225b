package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"

	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string   `env:"PORT" envDefault:"3000"`
	Environment  string   `env:"ENV" envDefault:"development"`
	ReadTimeout  int      `env:"READ_TIMEOUT" envDefault:"10"`
	WriteTimeout int      `env:"WRITE_TIMEOUT" envDefault:"10"`
	CORSOrigins  []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"*"`

	// Layout service
	DBPath      string `env:"LAYOUT_DB_PATH" envDefault:"data/db/layout.db"`
	LayoutURL   string `env:"LAYOUT_URL" envDefault:"http://localhost:3001"`
	AnimationMS int    `env:"ANIMATION_MS" envDefault:"1200"`
	ViewIdleMin int    `env:"VIEW_IDLE_MINUTES" envDefault:"30"`

	AisleSpacing float64 `env:"LAYOUT_AISLE_SPACING" envDefault:"4"`
	BaySpacing   float64 `env:"LAYOUT_BAY_SPACING" envDefault:"1.5"`
	LevelHeight  float64 `env:"LAYOUT_LEVEL_HEIGHT" envDefault:"1"`
	OriginX      float64 `env:"LAYOUT_ORIGIN_X" envDefault:"0"`
	OriginZ      float64 `env:"LAYOUT_ORIGIN_Z" envDefault:"0"`
}

// Load загружает конфигурацию из переменных окружения.
// Некорректные значения не роняют сервис: берутся значения по умолчанию.
func Load() *Config {
	cfg, err := Parse()
	if err != nil {
		log.Printf("[CONFIG] %v, falling back to defaults", err)
		return Defaults()
	}
	return cfg
}

// Parse читает окружение и возвращает ошибку вместо отката на дефолты.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Layout().Validate(); err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	return cfg, nil
}

// Defaults - конфигурация без учета окружения.
func Defaults() *Config {
	cfg := &Config{}
	// envDefault применяется и при пустом окружении
	_ = env.ParseWithOptions(cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// Layout собирает LayoutConfig из настроек сетки.
func (c *Config) Layout() models.LayoutConfig {
	return models.LayoutConfig{
		AisleSpacing: c.AisleSpacing,
		BaySpacing:   c.BaySpacing,
		LevelHeight:  c.LevelHeight,
		Origin:       models.Origin{X: c.OriginX, Z: c.OriginZ},
	}
}

func (c *Config) AnimationDuration() time.Duration {
	if c.AnimationMS < 0 {
		return 0
	}
	return time.Duration(c.AnimationMS) * time.Millisecond
}

// ViewIdleTTL - время жизни вида без обращений; 0 и меньше отключают вытеснение.
func (c *Config) ViewIdleTTL() time.Duration {
	if c.ViewIdleMin <= 0 {
		return 0
	}
	return time.Duration(c.ViewIdleMin) * time.Minute
}
