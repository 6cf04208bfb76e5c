package converter

import (
	"time"

	"github.com/samber/lo"

	"github.com/you-humble/pcbuilder/internal/model"
)

// PartIDsRequest is the slot-id body shared by /parts/details, /parts/price, /build and /engineer/prebuilt.
type PartIDsRequest struct {
	CPUID         *int64 `json:"cpuId"`
	GPUID         *int64 `json:"gpuId"`
	MemoryID      *int64 `json:"memoryId"`
	StorageID     *int64 `json:"storageId"`
	StorageID2    *int64 `json:"storageId2"`
	MotherboardID *int64 `json:"motherboardId"`
	PowerSupplyID *int64 `json:"powerSupplyId"`
	CaseID        *int64 `json:"caseId"`
}

type SaveBuildRequest struct {
	PartIDsRequest
	UserID       int64    `json:"userId"`
	BuildID      *int64   `json:"buildId"`
	AddToProfile bool     `json:"addToProfile"`
	Rating       *float64 `json:"rating"`
}

type SavePrebuiltRequest struct {
	PartIDsRequest
	EngineerID int64    `json:"engineerId"`
	PrebuiltID *int64   `json:"prebuiltId"`
	Rating     *float64 `json:"rating"`
}

type PartSummaryResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Chipset     string `json:"chipset,omitempty"`
	CapacityGB  int64  `json:"capacityGb,omitempty"`
	WattageW    int64  `json:"wattageW,omitempty"`
}

type PartsListingResponse struct {
	CPUs          []PartSummaryResponse `json:"cpus"`
	GPUs          []PartSummaryResponse `json:"gpus"`
	Memory        []PartSummaryResponse `json:"memory"`
	Storage       []PartSummaryResponse `json:"storage"`
	Motherboards  []PartSummaryResponse `json:"motherboards"`
	PowerSupplies []PartSummaryResponse `json:"powerSupplies"`
	Cases         []PartSummaryResponse `json:"cases"`
}

type GameResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type GamesResponse struct {
	Games []GameResponse `json:"games"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type BuildResponse struct {
	ID            int64     `json:"id"`
	UserID        int64     `json:"userId"`
	CPUID         *int64    `json:"cpuId"`
	GPUID         *int64    `json:"gpuId"`
	MemoryID      *int64    `json:"memoryId"`
	StorageID     *int64    `json:"storageId"`
	StorageID2    *int64    `json:"storageId2"`
	MotherboardID *int64    `json:"motherboardId"`
	PowerSupplyID *int64    `json:"powerSupplyId"`
	CaseID        *int64    `json:"caseId"`
	TotalPrice    float64   `json:"totalPrice"`
	AddToProfile  bool      `json:"addToProfile"`
	Rating        *float64  `json:"rating"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	// Expanded slots, present on listings.
	Parts *model.ResolvedBuild `json:"parts,omitempty"`
}

type PrebuiltResponse struct {
	ID            int64                `json:"id"`
	EngineerID    int64                `json:"engineerId"`
	CPUID         *int64               `json:"cpuId"`
	GPUID         *int64               `json:"gpuId"`
	MemoryID      *int64               `json:"memoryId"`
	StorageID     *int64               `json:"storageId"`
	StorageID2    *int64               `json:"storageId2"`
	MotherboardID *int64               `json:"motherboardId"`
	PowerSupplyID *int64               `json:"powerSupplyId"`
	CaseID        *int64               `json:"caseId"`
	TotalPrice    float64              `json:"totalPrice"`
	Rating        *float64             `json:"rating"`
	CreatedAt     time.Time            `json:"createdAt"`
	UpdatedAt     time.Time            `json:"updatedAt"`
	Parts         *model.ResolvedBuild `json:"parts,omitempty"`
}

func PartIDsToModel(req PartIDsRequest) model.BuildParts {
	return model.BuildParts{
		CPUID:         req.CPUID,
		GPUID:         req.GPUID,
		MemoryID:      req.MemoryID,
		StorageID:     req.StorageID,
		StorageID2:    req.StorageID2,
		MotherboardID: req.MotherboardID,
		PowerSupplyID: req.PowerSupplyID,
		CaseID:        req.CaseID,
	}
}

func SaveBuildRequestToParams(req SaveBuildRequest) model.SaveBuildParams {
	return model.SaveBuildParams{
		UserID:       req.UserID,
		BuildID:      req.BuildID,
		Parts:        PartIDsToModel(req.PartIDsRequest),
		AddToProfile: req.AddToProfile,
		Rating:       req.Rating,
	}
}

func ListingToResponse(l model.CatalogListing) PartsListingResponse {
	list := func(c model.Category) []PartSummaryResponse {
		return lo.Map(l[c], func(p model.PartSummary, _ int) PartSummaryResponse {
			return PartSummaryResponse{
				ID:          p.ID,
				Name:        p.Name,
				DisplayName: p.EffectiveName(),
				Chipset:     p.Chipset,
				CapacityGB:  p.CapacityGB,
				WattageW:    p.WattageW,
			}
		})
	}

	return PartsListingResponse{
		CPUs:          list(model.CategoryCPU),
		GPUs:          list(model.CategoryGPU),
		Memory:        list(model.CategoryMemory),
		Storage:       list(model.CategoryStorage),
		Motherboards:  list(model.CategoryMotherboard),
		PowerSupplies: list(model.CategoryPowerSupply),
		Cases:         list(model.CategoryCase),
	}
}

func BuildToResponse(b model.Build) BuildResponse {
	return BuildResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		CPUID:         b.Parts.CPUID,
		GPUID:         b.Parts.GPUID,
		MemoryID:      b.Parts.MemoryID,
		StorageID:     b.Parts.StorageID,
		StorageID2:    b.Parts.StorageID2,
		MotherboardID: b.Parts.MotherboardID,
		PowerSupplyID: b.Parts.PowerSupplyID,
		CaseID:        b.Parts.CaseID,
		TotalPrice:    b.TotalPrice,
		AddToProfile:  b.AddToProfile,
		Rating:        b.Rating,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
		Parts:         b.Details,
	}
}

func BuildsToResponse(builds []model.Build) []BuildResponse {
	return lo.Map(builds, func(b model.Build, _ int) BuildResponse { return BuildToResponse(b) })
}

func GamePageToResponse(p model.GamePage) GamesResponse {
	return GamesResponse{
		Games: lo.Map(p.Games, func(g model.Game, _ int) GameResponse {
			return GameResponse{ID: g.ID, Name: g.Name}
		}),
		Total: p.Total,
		Page:  p.Page,
		Limit: p.Limit,
	}
}

func SavePrebuiltRequestToParams(req SavePrebuiltRequest) model.SavePrebuiltParams {
	return model.SavePrebuiltParams{
		EngineerID: req.EngineerID,
		PrebuiltID: req.PrebuiltID,
		Parts:      PartIDsToModel(req.PartIDsRequest),
		Rating:     req.Rating,
	}
}

func PrebuiltToResponse(p model.Prebuilt) PrebuiltResponse {
	return PrebuiltResponse{
		ID:            p.ID,
		EngineerID:    p.EngineerID,
		CPUID:         p.Parts.CPUID,
		GPUID:         p.Parts.GPUID,
		MemoryID:      p.Parts.MemoryID,
		StorageID:     p.Parts.StorageID,
		StorageID2:    p.Parts.StorageID2,
		MotherboardID: p.Parts.MotherboardID,
		PowerSupplyID: p.Parts.PowerSupplyID,
		CaseID:        p.Parts.CaseID,
		TotalPrice:    p.TotalPrice,
		Rating:        p.Rating,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Parts:         p.Details,
	}
}

func PrebuiltsToResponse(prebuilts []model.Prebuilt) []PrebuiltResponse {
	return lo.Map(prebuilts, func(p model.Prebuilt, _ int) PrebuiltResponse { return PrebuiltToResponse(p) })
}
