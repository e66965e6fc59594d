package effectmodel_test

import (
	"testing"

	effectmodel "github.com/on-the-ground/ballsinboxes/effects/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestNewEffectScopeConfig_Defaults(t *testing.T) {
	cfg := effectmodel.NewEffectScopeConfig(0, -3)
	assert.Equal(t, 1, cfg.BufferSize)
	assert.Equal(t, 1, cfg.NumWorkers)

	cfg = effectmodel.NewEffectScopeConfig(16, 4)
	assert.Equal(t, effectmodel.EffectScopeConfig{BufferSize: 16, NumWorkers: 4}, cfg)
}
