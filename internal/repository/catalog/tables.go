package repository

import (
	"fmt"

	"github.com/you-humble/pcbuilder/internal/model"
)

// tableSpec describes where a category lives and which extra column feeds its
// effective name.
type tableSpec struct {
	table string
	attr  string
	dest  func(p *model.PartSummary) any
}

var tables = [...]tableSpec{
	model.CategoryCPU:         {table: "cpus"},
	model.CategoryGPU:         {table: "gpus", attr: "chipset", dest: chipsetDest},
	model.CategoryMemory:      {table: "memory"},
	model.CategoryStorage:     {table: "storage", attr: "capacity_gb", dest: capacityDest},
	model.CategoryMotherboard: {table: "motherboards"},
	model.CategoryPowerSupply: {table: "power_supplies", attr: "wattage_w", dest: wattageDest},
	model.CategoryCase:        {table: "cases"},
}

func specFor(c model.Category) (tableSpec, error) {
	if !c.Valid() || int(c) >= len(tables) {
		return tableSpec{}, fmt.Errorf("%w: %d", model.ErrUnknownCategory, c)
	}
	return tables[c], nil
}

func (s tableSpec) summaryColumns() []string {
	if s.attr == "" {
		return []string{"id", "name"}
	}
	return []string{"id", "name", s.attr}
}

func (s tableSpec) summaryDest(p *model.PartSummary) []any {
	if s.attr == "" {
		return []any{&p.ID, &p.Name}
	}
	return []any{&p.ID, &p.Name, s.dest(p)}
}

func chipsetDest(p *model.PartSummary) any  { return &p.Chipset }
func capacityDest(p *model.PartSummary) any { return &p.CapacityGB }
func wattageDest(p *model.PartSummary) any  { return &p.WattageW }
