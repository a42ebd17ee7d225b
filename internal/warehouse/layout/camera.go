package layout

import (
	"math"

	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// Camera framing
// ============================================================

// Минимальные размеры кадра, чтобы камера не упиралась в одиночную ячейку.
const (
	minOverviewExtent = 6.0
	minAisleExtent    = 4.0
	minShelfExtent    = 1.5
)

// OverviewPose - общий план: камера сверху-спереди от центра склада.
func OverviewPose(b models.Bounds) models.CameraPose {
	size := b.Size()
	extent := math.Max(minOverviewExtent, math.Max(size.X, math.Max(size.Y, size.Z)))

	return models.CameraPose{
		Eye:    b.Center.Add(models.Vec3{Y: extent * 0.9, Z: extent * 1.2}),
		Target: b.Center,
	}
}

// AislePose - вид вдоль ряда сверху.
func AislePose(a models.AisleDescriptor) models.CameraPose {
	extent := math.Max(minAisleExtent, a.Width)

	return models.CameraPose{
		Eye:    a.Center.Add(models.Vec3{Y: extent * 0.6, Z: extent * 0.8}),
		Target: a.Center,
	}
}

// FocusPose - камера напротив лицевой стороны стеллажа.
func FocusPose(s models.ShelfGroup) models.CameraPose {
	extent := math.Max(minShelfExtent, math.Max(s.Width, s.Height))

	return models.CameraPose{
		Eye:    s.Center.Add(models.Vec3{Y: extent * 0.25, Z: s.Depth/2 + extent*1.6}),
		Target: s.Center,
	}
}
