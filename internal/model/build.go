package model

import "time"

// BuildParts holds the eight slot ids of a configuration. Nil means empty slot.
type BuildParts struct {
	CPUID         *int64
	GPUID         *int64
	MemoryID      *int64
	StorageID     *int64
	StorageID2    *int64
	MotherboardID *int64
	PowerSupplyID *int64
	CaseID        *int64
}

// Refs returns one ref per filled slot; duplicate ids in both storage slots yield two refs.
func (p BuildParts) Refs() []PartRef {
	slots := []struct {
		c  Category
		id *int64
	}{
		{CategoryCPU, p.CPUID},
		{CategoryGPU, p.GPUID},
		{CategoryMemory, p.MemoryID},
		{CategoryStorage, p.StorageID},
		{CategoryStorage, p.StorageID2},
		{CategoryMotherboard, p.MotherboardID},
		{CategoryPowerSupply, p.PowerSupplyID},
		{CategoryCase, p.CaseID},
	}

	refs := make([]PartRef, 0, len(slots))
	for _, s := range slots {
		if s.id != nil && *s.id > 0 {
			refs = append(refs, PartRef{Category: s.c, ID: *s.id})
		}
	}
	return refs
}

type Build struct {
	ID     int64
	UserID int64
	Parts  BuildParts
	// Sum of the prices of every filled slot.
	TotalPrice   float64
	AddToProfile bool
	Rating       *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
	// Filled slots expanded into display records; set on listings only.
	Details *ResolvedBuild
}

type SaveBuildParams struct {
	UserID int64
	// Updates the user's existing build when set.
	BuildID      *int64
	Parts        BuildParts
	AddToProfile bool
	Rating       *float64
}

// ResolvedBuild is the per-request output of the build generator.
type ResolvedBuild struct {
	CPU         *PartDetail `json:"cpu"`
	GPU         *PartDetail `json:"gpu"`
	Memory      *PartDetail `json:"memory"`
	PowerSupply *PartDetail `json:"powerSupply"`
	Case        *PartDetail `json:"case"`
	Storage     *PartDetail `json:"storage"`
	Storage2    *PartDetail `json:"storage2"`
	Motherboard *PartDetail `json:"motherboard"`
}
