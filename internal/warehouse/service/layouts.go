package service

import (
	"context"
	"fmt"

	"warehouse-console/internal/warehouse/builder"
	"warehouse-console/internal/warehouse/layout"
	"warehouse-console/internal/warehouse/models"
)

// ============================================================
// Layout assembly
// ============================================================

// StockSource - источник сырых строк остатков по идентификатору склада.
type StockSource interface {
	ListStock(ctx context.Context, warehouseID string) ([]models.StockRecord, error)
}

// Model - собранная сцена склада плюс диагностика сборки.
type Model struct {
	Warehouse string        `json:"warehouse"`
	Scene     *layout.Scene `json:"scene"`
	Dropped   []string      `json:"dropped"`
}

type Layouts struct {
	source StockSource
}

func NewLayouts(source StockSource) *Layouts {
	return &Layouts{source: source}
}

// Load читает остатки и собирает сцену с нуля.
func (l *Layouts) Load(ctx context.Context, warehouseID string, cfg models.LayoutConfig) (*Model, error) {
	records, err := l.source.ListStock(ctx, warehouseID)
	if err != nil {
		return nil, fmt.Errorf("list stock %s: %w", warehouseID, err)
	}
	return Assemble(warehouseID, records, cfg), nil
}

// Assemble - чистая сборка модели из уже полученных строк.
func Assemble(warehouseID string, records []models.StockRecord, cfg models.LayoutConfig) *Model {
	b := builder.NewBuilder()
	slots := b.Build(records)

	return &Model{
		Warehouse: warehouseID,
		Scene:     layout.NewScene(slots, cfg),
		Dropped:   b.Dropped(),
	}
}
