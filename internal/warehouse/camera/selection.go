package camera

import (
	"fmt"

	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// Selection state
// ============================================================

type Kind int

const (
	KindNone Kind = iota
	KindAisle
	KindShelf
	KindBin
)

var kindNames = map[Kind]string{
	KindNone:  "none",
	KindAisle: "aisle",
	KindShelf: "shelf",
	KindBin:   "bin",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown selection kind %q", text)
}

// Selection - текущий выбор: ничего, проход, стеллаж или ячейка.
// Для KindBin Row/Column хранят стеллаж-владелец: осмотр ячейки
// лежит поверх выбора стеллажа, а не заменяет его.
type Selection struct {
	Kind     Kind   `json:"kind"`
	Row      string `json:"row,omitempty"`
	Column   int    `json:"column,omitempty"`
	SlotCode string `json:"slot_code,omitempty"`
}

func None() Selection {
	return Selection{Kind: KindNone}
}

func AisleSelection(row string) Selection {
	return Selection{Kind: KindAisle, Row: row}
}

func ShelfSelection(row string, column int) Selection {
	return Selection{Kind: KindShelf, Row: row, Column: column}
}

func (s Selection) Shelf() (models.ShelfKey, bool) {
	if s.Kind != KindShelf && s.Kind != KindBin {
		return models.ShelfKey{}, false
	}
	return models.ShelfKey{Row: s.Row, Column: s.Column}, true
}

// ============================================================
// Transitions (pure)
// ============================================================

// SelectAisle: другой ряд -> AisleSelected(row), тот же -> None. Осмотр ячейки сбрасывается.
func (s Selection) SelectAisle(row string) Selection {
	if s.Kind == KindAisle && s.Row == row {
		return None()
	}
	return AisleSelection(row)
}

// SelectShelf: аналогичный переключатель для стеллажа; снимает выбор прохода и ячейки.
func (s Selection) SelectShelf(row string, column int) Selection {
	if key, ok := s.Shelf(); ok && key.Row == row && key.Column == column {
		return None()
	}
	return ShelfSelection(row, column)
}

// InspectBin допустим только при выбранном стеллаже; иначе выбор не меняется.
func (s Selection) InspectBin(code string) Selection {
	if s.Kind != KindShelf && s.Kind != KindBin {
		return s
	}
	return Selection{Kind: KindBin, Row: s.Row, Column: s.Column, SlotCode: code}
}

// ClearBin возвращает из осмотра ячейки к выбранному стеллажу.
func (s Selection) ClearBin() Selection {
	if s.Kind != KindBin {
		return s
	}
	return ShelfSelection(s.Row, s.Column)
}
