package camera

import (
	"math"
	"time"

	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// Camera animation
// ============================================================

const DefaultDuration = 1200 * time.Millisecond

// Ease - симметричный кубический ease-in-out.
func Ease(p float64) float64 {
	if p < 0.5 {
		return 4 * p * p * p
	}
	return 1 - math.Pow(-2*p+2, 3)/2
}

// Lerp в форме a(1-t) + bt: при t=0 дает ровно a, при t=1 ровно b.
func Lerp(a, b models.CameraPose, t float64) models.CameraPose {
	return models.CameraPose{
		Eye:    lerpVec(a.Eye, b.Eye, t),
		Target: lerpVec(a.Target, b.Target, t),
	}
}

func lerpVec(a, b models.Vec3, t float64) models.Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Animation - один прогон камеры от Start к Target.
type Animation struct {
	Start     models.CameraPose
	Target    models.CameraPose
	StartedAt time.Duration
	Duration  time.Duration
}

// Progress - доля прошедшего времени, ограниченная [0, 1].
func (a Animation) Progress(now time.Duration) float64 {
	if a.Duration <= 0 {
		return 1
	}
	p := float64(now-a.StartedAt) / float64(a.Duration)
	return math.Max(0, math.Min(1, p))
}

// At возвращает отображаемую позу в момент now.
func (a Animation) At(now time.Duration) models.CameraPose {
	return Lerp(a.Start, a.Target, Ease(a.Progress(now)))
}

func (a Animation) Done(now time.Duration) bool {
	return a.Progress(now) >= 1
}
