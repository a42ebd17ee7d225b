package camera

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"warehouse-console/internal/warehouse/models"
)

func TestEase(t *testing.T) {
	assert.Equal(t, 0.0, Ease(0))
	assert.Equal(t, 1.0, Ease(1))
	assert.Equal(t, 0.5, Ease(0.5))
	assert.InDelta(t, 4*0.25*0.25*0.25, Ease(0.25), 1e-12)

	// симметрия: ease(p) + ease(1-p) == 1
	for _, p := range []float64{0.1, 0.2, 0.3, 0.4, 0.45} {
		assert.InDelta(t, 1.0, Ease(p)+Ease(1-p), 1e-12)
	}

	prev := -1.0
	for p := 0.0; p <= 1.0; p += 0.01 {
		v := Ease(p)
		assert.GreaterOrEqual(t, v, prev)
		prev = v
	}
}

func TestAnimation_Endpoints(t *testing.T) {
	a := Animation{
		Start:     models.CameraPose{Eye: models.Vec3{X: 0.1, Y: 0.7, Z: -3.3}, Target: models.Vec3{X: 1.1}},
		Target:    models.CameraPose{Eye: models.Vec3{X: 0.3, Y: 9.9, Z: 2.2}, Target: models.Vec3{Z: -7.7}},
		StartedAt: time.Second,
		Duration:  DefaultDuration,
	}

	assert.Equal(t, a.Start, a.At(time.Second))
	assert.Equal(t, a.Start, a.At(0), "before start clamps to 0")
	assert.Equal(t, a.Target, a.At(time.Second+DefaultDuration))
	assert.Equal(t, a.Target, a.At(time.Hour))

	assert.Equal(t, 0.5, a.Progress(time.Second+DefaultDuration/2))
	assert.False(t, a.Done(time.Second))
	assert.True(t, a.Done(time.Second+DefaultDuration))
}

func TestAnimation_ZeroDuration(t *testing.T) {
	a := Animation{Target: models.CameraPose{Eye: models.Vec3{X: 1}}}
	assert.Equal(t, a.Target, a.At(0))
	assert.True(t, a.Done(0))
}

func TestLerp_Midpoint(t *testing.T) {
	a := models.CameraPose{Eye: models.Vec3{X: 0, Y: 2}, Target: models.Vec3{Z: 4}}
	b := models.CameraPose{Eye: models.Vec3{X: 2, Y: 4}, Target: models.Vec3{Z: 8}}

	mid := Lerp(a, b, 0.5)
	assert.Equal(t, models.Vec3{X: 1, Y: 3}, mid.Eye)
	assert.Equal(t, models.Vec3{Z: 6}, mid.Target)
}
