package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLayoutConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultLayoutConfig().Validate())

	edge := DefaultLayoutConfig()
	edge.BaySpacing = MaxSpacing
	edge.Origin = Origin{X: -MaxOrigin, Z: MaxOrigin}
	assert.NoError(t, edge.Validate())

	tests := map[string]func(c *LayoutConfig){
		"zero aisle":         func(c *LayoutConfig) { c.AisleSpacing = 0 },
		"negative bay":       func(c *LayoutConfig) { c.BaySpacing = -1 },
		"nan level":          func(c *LayoutConfig) { c.LevelHeight = math.NaN() },
		"inf bay":            func(c *LayoutConfig) { c.BaySpacing = math.Inf(1) },
		"huge bay":           func(c *LayoutConfig) { c.BaySpacing = 1e308 },
		"spacing over max":   func(c *LayoutConfig) { c.AisleSpacing = MaxSpacing * 2 },
		"inf origin x":       func(c *LayoutConfig) { c.Origin.X = math.Inf(1) },
		"minus inf origin z": func(c *LayoutConfig) { c.Origin.Z = math.Inf(-1) },
		"nan origin z":       func(c *LayoutConfig) { c.Origin.Z = math.NaN() },
		"origin over max":    func(c *LayoutConfig) { c.Origin.X = MaxOrigin * 10 },
	}

	for name, mutate := range tests {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultLayoutConfig()
			mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
