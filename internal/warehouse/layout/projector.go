package layout

import (
	"math"
	"sort"

	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// Layout Projector
// ============================================================

// Геометрия стеллажа в долях от шага сетки.
const (
	shelfWidthFactor = 0.9
	shelfDepthFactor = 0.35
	aisleDepthFactor = 0.8
)

// Position переводит координату ячейки в точку сцены (аффинная сетка, без упаковки).
func Position(c models.LocationCode, cfg models.LayoutConfig) models.Vec3 {
	return models.Vec3{
		X: cfg.Origin.X + float64(c.Column)*cfg.BaySpacing,
		Y: float64(c.Level) * cfg.LevelHeight,
		Z: cfg.Origin.Z + float64(c.RowIndex())*cfg.AisleSpacing,
	}
}

// Project возвращает копию ячеек с проставленной Position. Исходный слайс не меняется.
func Project(slots []models.Slot, cfg models.LayoutConfig) []models.Slot {
	out := make([]models.Slot, len(slots))
	for i, s := range slots {
		s.Position = Position(s.Coordinate, cfg)
		out[i] = s
	}
	return out
}

// ComputeBounds считает габариты по позициям ячеек.
// Для пустого набора - нулевые габариты с центром в (0,0,0).
func ComputeBounds(slots []models.Slot) models.Bounds {
	points := make([]models.Vec3, len(slots))
	for i, s := range slots {
		points[i] = s.Position
	}
	return boundsOf(points)
}

func boundsOf(points []models.Vec3) models.Bounds {
	if len(points) == 0 {
		return models.Bounds{}
	}

	lo := models.Vec3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64}
	hi := models.Vec3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64}

	for _, p := range points {
		lo.X, hi.X = math.Min(lo.X, p.X), math.Max(hi.X, p.X)
		lo.Y, hi.Y = math.Min(lo.Y, p.Y), math.Max(hi.Y, p.Y)
		lo.Z, hi.Z = math.Min(lo.Z, p.Z), math.Max(hi.Z, p.Z)
	}

	return models.Bounds{
		Min:    lo,
		Max:    hi,
		Center: lo.Add(hi).Scale(0.5),
	}
}

// ============================================================
// Shelves & aisles
// ============================================================

// Shelves группирует ячейки по (row, column) и считает габариты стеллажа.
func Shelves(slots []models.Slot, cfg models.LayoutConfig) []models.ShelfGroup {
	type acc struct {
		levels int
		codes  []string
	}

	groups := make(map[models.ShelfKey]*acc)
	for _, s := range slots {
		key := s.Coordinate.ShelfKey()
		a := groups[key]
		if a == nil {
			a = &acc{}
			groups[key] = a
		}
		if s.Coordinate.Level+1 > a.levels {
			a.levels = s.Coordinate.Level + 1
		}
		a.codes = append(a.codes, s.Code)
	}

	out := make([]models.ShelfGroup, 0, len(groups))
	for key, a := range groups {
		sort.Strings(a.codes)
		out = append(out, shelfGeometry(key, a.levels, a.codes, cfg))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Column < out[j].Column
	})
	return out
}

func shelfGeometry(key models.ShelfKey, levels int, codes []string, cfg models.LayoutConfig) models.ShelfGroup {
	anchor := Position(models.LocationCode{Row: key.Row, Column: key.Column}, cfg)
	height := float64(levels) * cfg.LevelHeight

	return models.ShelfGroup{
		Row:       key.Row,
		Column:    key.Column,
		Levels:    levels,
		Width:     cfg.BaySpacing * shelfWidthFactor,
		Height:    height,
		Depth:     cfg.AisleSpacing * shelfDepthFactor,
		Anchor:    anchor,
		Center:    anchor.Add(models.Vec3{Y: height / 2}),
		SlotCodes: codes,
	}
}

// Aisles строит по одному описанию прохода на каждый ряд.
func Aisles(slots []models.Slot, cfg models.LayoutConfig) []models.AisleDescriptor {
	type span struct {
		min, max int
	}

	rows := make(map[string]*span)
	for _, s := range slots {
		c := s.Coordinate
		sp := rows[c.Row]
		if sp == nil {
			rows[c.Row] = &span{min: c.Column, max: c.Column}
			continue
		}
		if c.Column < sp.min {
			sp.min = c.Column
		}
		if c.Column > sp.max {
			sp.max = c.Column
		}
	}

	out := make([]models.AisleDescriptor, 0, len(rows))
	for row, sp := range rows {
		start := Position(models.LocationCode{Row: row, Column: sp.min}, cfg)
		end := Position(models.LocationCode{Row: row, Column: sp.max}, cfg)

		out = append(out, models.AisleDescriptor{
			Row:       row,
			MinColumn: sp.min,
			MaxColumn: sp.max,
			Center:    start.Add(end).Scale(0.5),
			Width:     end.X - start.X + cfg.BaySpacing*shelfWidthFactor,
			Depth:     cfg.AisleSpacing * aisleDepthFactor,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Row < out[j].Row })
	return out
}
