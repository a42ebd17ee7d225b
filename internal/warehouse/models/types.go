package models

import (
	"fmt"
	"math"
)

// ============================================================
// Geometry primitives
// ============================================================

type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}

// Bounds - axis-aligned габариты набора точек.
type Bounds struct {
	Min    Vec3 `json:"min"`
	Max    Vec3 `json:"max"`
	Center Vec3 `json:"center"`
}

// Size возвращает размеры коробки по каждой оси.
func (b Bounds) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// CameraPose - позиция камеры и точка, на которую она смотрит.
type CameraPose struct {
	Eye    Vec3 `json:"eye"`
	Target Vec3 `json:"target"`
}

// ============================================================
// Location codes
// ============================================================

// LocationCode - разобранный код ячейки: ряд, колонка (секция) и ярус.
type LocationCode struct {
	Row    string `json:"row"`
	Column int    `json:"column"`
	Level  int    `json:"level"`
}

// RowIndex: "A" -> 0, "B" -> 1, ...
func (c LocationCode) RowIndex() int {
	if c.Row == "" {
		return 0
	}
	return int(c.Row[0]) - 'A'
}

// ShelfKey идентифицирует стеллаж (row, column) без яруса.
func (c LocationCode) ShelfKey() ShelfKey {
	return ShelfKey{Row: c.Row, Column: c.Column}
}

type ShelfKey struct {
	Row    string `json:"row"`
	Column int    `json:"column"`
}

func (k ShelfKey) String() string {
	return fmt.Sprintf("%s%02d", k.Row, k.Column)
}

// ============================================================
// Stock data
// ============================================================

// StockRecord - одна строка остатков от источника данных.
// Несколько записей могут ссылаться на одну ячейку.
type StockRecord struct {
	LocationCode string  `json:"location_code" validate:"max=32"`
	ItemCode     string  `json:"item_code" validate:"max=64"`
	ItemName     string  `json:"item_name" validate:"max=256"`
	Quantity     float64 `json:"quantity"`
}

type SlotItem struct {
	ItemCode string  `json:"item_code"`
	ItemName string  `json:"item_name"`
	Quantity float64 `json:"quantity"`
}

// Slot - одна физическая ячейка хранения.
type Slot struct {
	Code          string       `json:"code"`
	Coordinate    LocationCode `json:"coordinate"`
	Position      Vec3         `json:"position"`
	Items         []SlotItem   `json:"items"`
	TotalQuantity float64      `json:"total_quantity"`
}

// Empty - ячейка без товара (в том числе синтезированная).
func (s Slot) Empty() bool {
	return len(s.Items) == 0
}

// IndexSlots строит индекс ячеек по коду. Порядок слайса не важен.
func IndexSlots(slots []Slot) map[string]Slot {
	index := make(map[string]Slot, len(slots))
	for _, s := range slots {
		index[s.Code] = s
	}
	return index
}

// ============================================================
// Derived groups
// ============================================================

// ShelfGroup - вертикальный стеллаж: все ячейки с одинаковыми (row, column).
type ShelfGroup struct {
	Row       string   `json:"row"`
	Column    int      `json:"column"`
	Levels    int      `json:"levels"`
	Width     float64  `json:"width"`
	Height    float64  `json:"height"`
	Depth     float64  `json:"depth"`
	Anchor    Vec3     `json:"anchor"`
	Center    Vec3     `json:"center"`
	SlotCodes []string `json:"slot_codes"`
}

func (g ShelfGroup) Key() ShelfKey {
	return ShelfKey{Row: g.Row, Column: g.Column}
}

// AisleDescriptor - проход (ряд) на всю ширину наблюдаемых колонок.
type AisleDescriptor struct {
	Row       string  `json:"row"`
	MinColumn int     `json:"min_column"`
	MaxColumn int     `json:"max_column"`
	Center    Vec3    `json:"center"`
	Width     float64 `json:"width"`
	Depth     float64 `json:"depth"`
}

// ============================================================
// Layout configuration
// ============================================================

type Origin struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// LayoutConfig задает шаг сетки склада. Других опций нет.
type LayoutConfig struct {
	AisleSpacing float64 `json:"aisle_spacing"`
	BaySpacing   float64 `json:"bay_spacing"`
	LevelHeight  float64 `json:"level_height"`
	Origin       Origin  `json:"origin"`
}

func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		AisleSpacing: 4.0,
		BaySpacing:   1.5,
		LevelHeight:  1.0,
	}
}

// Пределы конфигурации. Колонка из кода ограничена int64, ряд и ярус - одной
// буквой и цифрой, так что при этих пределах координаты сцены остаются конечными.
const (
	MaxSpacing = 1e6
	MaxOrigin  = 1e9
)

// Validate проверяет, что шаги сетки положительные и конечные, а смещение конечное.
func (c LayoutConfig) Validate() error {
	checks := []struct {
		name string
		val  float64
	}{
		{"aisle_spacing", c.AisleSpacing},
		{"bay_spacing", c.BaySpacing},
		{"level_height", c.LevelHeight},
	}
	for _, ch := range checks {
		if !(ch.val > 0 && ch.val <= MaxSpacing) {
			return fmt.Errorf("%s must be a positive number not above %g, got %v", ch.name, float64(MaxSpacing), ch.val)
		}
	}

	origin := []struct {
		name string
		val  float64
	}{
		{"origin.x", c.Origin.X},
		{"origin.z", c.Origin.Z},
	}
	for _, o := range origin {
		if !(math.Abs(o.val) <= MaxOrigin) {
			return fmt.Errorf("%s must be a finite number within ±%g, got %v", o.name, float64(MaxOrigin), o.val)
		}
	}
	return nil
}
