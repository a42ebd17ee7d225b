package builder

import (
	"sort"

	"warehouse-console/internal/warehouse/location"
	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// Spatial Model Builder
// ============================================================

// Builder собирает полный набор ячеек из разреженных остатков.
// Каждый вызов Build начинает с нуля; возвращенный слайс дальше не меняется.
type Builder struct {
	slots    map[string]*models.Slot
	maxLevel map[models.ShelfKey]int
	order    []models.ShelfKey
	dropped  []string
}

func NewBuilder() *Builder {
	return &Builder{
		slots:    make(map[string]*models.Slot),
		maxLevel: make(map[models.ShelfKey]int),
	}
}

// Build - удобная обертка для одноразовой сборки.
func Build(records []models.StockRecord) []models.Slot {
	return NewBuilder().Build(records)
}

// Build превращает строки остатков в ячейки, достраивая пустые ярусы.
// Записи с неразбираемым кодом отбрасываются, их коды доступны через Dropped.
func (b *Builder) Build(records []models.StockRecord) []models.Slot {
	b.reset()

	for _, rec := range records {
		coord, err := location.Parse(rec.LocationCode)
		if err != nil {
			b.dropped = append(b.dropped, rec.LocationCode)
			continue
		}
		b.addRecord(coord, rec)
	}

	b.fillGaps()
	return b.collect()
}

// Dropped возвращает коды записей, отброшенных последним Build.
func (b *Builder) Dropped() []string {
	return append([]string(nil), b.dropped...)
}

func (b *Builder) reset() {
	b.slots = make(map[string]*models.Slot)
	b.maxLevel = make(map[models.ShelfKey]int)
	b.order = b.order[:0]
	b.dropped = nil
}

func (b *Builder) addRecord(coord models.LocationCode, rec models.StockRecord) {
	slot := b.findOrCreateSlot(coord)
	slot.Items = append(slot.Items, models.SlotItem{
		ItemCode: rec.ItemCode,
		ItemName: rec.ItemName,
		Quantity: rec.Quantity,
	})
	slot.TotalQuantity += rec.Quantity

	key := coord.ShelfKey()
	if current, ok := b.maxLevel[key]; !ok || coord.Level > current {
		if !ok {
			b.order = append(b.order, key)
		}
		b.maxLevel[key] = coord.Level
	}
}

// findOrCreateSlot ищет ячейку по каноническому коду, а не по исходной строке:
// "A012" и "A0012" попадают в одну ячейку.
func (b *Builder) findOrCreateSlot(coord models.LocationCode) *models.Slot {
	code := location.Format(coord)
	if slot, ok := b.slots[code]; ok {
		return slot
	}

	slot := &models.Slot{
		Code:       code,
		Coordinate: coord,
		Items:      []models.SlotItem{},
	}
	b.slots[code] = slot
	return slot
}

// fillGaps гарантирует ярусы 0..maxLevel для каждого наблюдаемого стеллажа.
func (b *Builder) fillGaps() {
	for _, key := range b.order {
		for level := 0; level <= b.maxLevel[key]; level++ {
			b.findOrCreateSlot(models.LocationCode{Row: key.Row, Column: key.Column, Level: level})
		}
	}
}

func (b *Builder) collect() []models.Slot {
	result := make([]models.Slot, 0, len(b.slots))
	for _, slot := range b.slots {
		result = append(result, *slot)
	}

	// ряд, колонка, ярус
	sort.Slice(result, func(i, j int) bool {
		return lessCoordinate(result[i].Coordinate, result[j].Coordinate)
	})
	return result
}

func lessCoordinate(a, b models.LocationCode) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	if a.Column != b.Column {
		return a.Column < b.Column
	}
	return a.Level < b.Level
}
