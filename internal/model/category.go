package model

import "strings"

type Category int32

const (
	CategoryUnknown Category = iota
	CategoryCPU
	CategoryGPU
	CategoryMemory
	CategoryStorage
	CategoryMotherboard
	CategoryPowerSupply
	CategoryCase
)

// Categories lists every real catalog category in canonical order.
var Categories = []Category{
	CategoryCPU,
	CategoryGPU,
	CategoryMemory,
	CategoryStorage,
	CategoryMotherboard,
	CategoryPowerSupply,
	CategoryCase,
}

var categoryNames = [...]string{
	CategoryUnknown:     "unknown",
	CategoryCPU:         "cpu",
	CategoryGPU:         "gpu",
	CategoryMemory:      "memory",
	CategoryStorage:     "storage",
	CategoryMotherboard: "motherboard",
	CategoryPowerSupply: "powerSupply",
	CategoryCase:        "case",
}

// categoryAliases maps the type labels a model tends to emit.
var categoryAliases = map[string]Category{
	"cpu":          CategoryCPU,
	"processor":    CategoryCPU,
	"gpu":          CategoryGPU,
	"graphics":     CategoryGPU,
	"ram":          CategoryMemory,
	"memory":       CategoryMemory,
	"ssd":          CategoryStorage,
	"hdd":          CategoryStorage,
	"storage":      CategoryStorage,
	"motherboard":  CategoryMotherboard,
	"psu":          CategoryPowerSupply,
	"power supply": CategoryPowerSupply,
	"powersupply":  CategoryPowerSupply,
	"case":         CategoryCase,
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return categoryNames[CategoryUnknown]
	}
	return categoryNames[c]
}

func (c Category) Valid() bool {
	return c > CategoryUnknown && c <= CategoryCase
}

// ParseCategory is case-insensitive. Unrecognised labels yield CategoryUnknown, false.
func ParseCategory(s string) (Category, bool) {
	c, ok := categoryAliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return CategoryUnknown, false
	}
	return c, true
}
