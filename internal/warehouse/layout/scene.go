package layout

import (
	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// Scene
// ============================================================

// Scene - все, что нужно рендеру и контроллеру камеры для одного набора ячеек.
// Пересобирается целиком при каждом новом наборе данных.
type Scene struct {
	Config   models.LayoutConfig      `json:"config"`
	Slots    []models.Slot            `json:"slots"`
	Shelves  []models.ShelfGroup      `json:"shelves"`
	Aisles   []models.AisleDescriptor `json:"aisles"`
	Bounds   models.Bounds            `json:"bounds"`
	Overview models.CameraPose        `json:"overview"`

	slotIndex  map[string]int
	shelfIndex map[models.ShelfKey]int
	aisleIndex map[string]int
}

// NewScene проецирует ячейки и считает производную геометрию.
func NewScene(slots []models.Slot, cfg models.LayoutConfig) *Scene {
	projected := Project(slots, cfg)
	bounds := ComputeBounds(projected)

	s := &Scene{
		Config:   cfg,
		Slots:    projected,
		Shelves:  Shelves(projected, cfg),
		Aisles:   Aisles(projected, cfg),
		Bounds:   bounds,
		Overview: OverviewPose(bounds),
	}
	s.index()
	return s
}

func (s *Scene) index() {
	s.slotIndex = make(map[string]int, len(s.Slots))
	for i, slot := range s.Slots {
		s.slotIndex[slot.Code] = i
	}
	s.shelfIndex = make(map[models.ShelfKey]int, len(s.Shelves))
	for i, shelf := range s.Shelves {
		s.shelfIndex[shelf.Key()] = i
	}
	s.aisleIndex = make(map[string]int, len(s.Aisles))
	for i, aisle := range s.Aisles {
		s.aisleIndex[aisle.Row] = i
	}
}

func (s *Scene) Slot(code string) (models.Slot, bool) {
	i, ok := s.slotIndex[code]
	if !ok {
		return models.Slot{}, false
	}
	return s.Slots[i], true
}

func (s *Scene) Shelf(row string, column int) (models.ShelfGroup, bool) {
	i, ok := s.shelfIndex[models.ShelfKey{Row: row, Column: column}]
	if !ok {
		return models.ShelfGroup{}, false
	}
	return s.Shelves[i], true
}

func (s *Scene) Aisle(row string) (models.AisleDescriptor, bool) {
	i, ok := s.aisleIndex[row]
	if !ok {
		return models.AisleDescriptor{}, false
	}
	return s.Aisles[i], true
}
