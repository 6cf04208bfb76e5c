package model

import (
	"strconv"
	"strings"
	"time"
)

// PartSummary is the minimal projection of a catalog row used for matching.
type PartSummary struct {
	ID       int64
	Category Category
	Name     string
	// GPU only.
	Chipset string
	// Storage only.
	CapacityGB int64
	// PowerSupply only.
	WattageW int64
}

type Part struct {
	PartSummary
	// Non-negative unit price.
	Price float64
	// May be protocol-relative ("//host/path") as stored.
	ImageURL   *string
	ProductURL *string
	UsageCount int64
	// Category-specific attributes (core count, socket, form factor...).
	Specs      map[string]any
	ModifiedAt time.Time
}

// PartDetail is a display-ready part.
type PartDetail struct {
	ID         int64          `json:"id"`
	Category   string         `json:"category"`
	Name       string         `json:"name"`
	RawName    string         `json:"rawName"`
	Price      float64        `json:"price"`
	ImageURL   *string        `json:"imageUrl"`
	ProductURL *string        `json:"productUrl"`
	UsageCount int64          `json:"usageCount"`
	Specs      map[string]any `json:"specs,omitempty"`
	// Oracle-declared type, set for compatibility suggestions only.
	Type string `json:"type,omitempty"`
}

type PartRef struct {
	Category Category
	ID       int64
}

// CatalogListing holds one ordered summary list per category.
type CatalogListing map[Category][]PartSummary

// effectiveNames composes the string a category is matched and displayed by.
var effectiveNames = [...]func(PartSummary) string{
	CategoryUnknown:     plainName,
	CategoryCPU:         plainName,
	CategoryGPU:         func(p PartSummary) string { return joinName(p.Name, p.Chipset) },
	CategoryMemory:      plainName,
	CategoryStorage:     func(p PartSummary) string { return joinName(p.Name, strconv.FormatInt(p.CapacityGB, 10)+"GB") },
	CategoryMotherboard: plainName,
	CategoryPowerSupply: func(p PartSummary) string { return joinName(p.Name, strconv.FormatInt(p.WattageW, 10)+"W") },
	CategoryCase:        plainName,
}

func (p PartSummary) EffectiveName() string {
	if p.Category < 0 || int(p.Category) >= len(effectiveNames) {
		return p.Name
	}
	return effectiveNames[p.Category](p)
}

func plainName(p PartSummary) string { return p.Name }

func joinName(name, suffix string) string {
	return name + " " + suffix
}

// NormalizeImageURL turns protocol-relative URLs into https ones.
func NormalizeImageURL(u *string) *string {
	if u == nil {
		return nil
	}
	if strings.HasPrefix(*u, "//") {
		s := "https:" + *u
		return &s
	}
	return u
}
