package model

import (
	"bytes"
	"encoding/json"
)

// TemplateGames is the fixed game list of the performance grid.
var TemplateGames = []string{
	"Cyberpunk 2077",
	"Red Dead Redemption 2",
	"Counter Strike 2",
	"Fortnite",
	"Call of Duty: Warzone",
}

type GamingParts struct {
	CPU string `json:"cpu"`
	GPU string `json:"gpu"`
	RAM string `json:"ram"`
}

// SystemSpec is the full free-text part set used by compatibility and rating.
type SystemSpec struct {
	CPU         string `json:"cpu"`
	GPU         string `json:"gpu"`
	RAM         string `json:"ram"`
	Storage     string `json:"storage"`
	SSD         string `json:"ssd"`
	HDD         string `json:"hdd"`
	Motherboard string `json:"motherboard"`
	PSU         string `json:"psu"`
	Case        string `json:"case"`
}

type AssemblyParts struct {
	CPU         string `json:"cpu"`
	GPU         string `json:"gpu"`
	RAM         string `json:"ram"`
	Motherboard string `json:"motherboard"`
	PSU         string `json:"psu"`
	Case        string `json:"case"`
}

type GetPCOptions struct {
	// Match GPUs by chipset only.
	PrioritizePerformance bool
}

// Performance is an FPS estimate per graphics preset.
type Performance struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
	Ultra  float64 `json:"ultra"`
}

type PerformanceGrid map[string]Performance

type SuggestedPart struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type CompatibilityIssue struct {
	Issue          string       `json:"issue"`
	CausingParts   []string     `json:"causingParts"`
	SuggestedParts []PartDetail `json:"suggestedParts"`
}

type CompatibilityReport struct {
	CompatibilityIssues []CompatibilityIssue `json:"compatibilityIssues"`
}

type Rating struct {
	CPU     float64 `json:"cpu"`
	GPU     float64 `json:"gpu"`
	Overall float64 `json:"overall"`
}

type AssemblyStep struct {
	Title        string   `json:"title"`
	Description  TextList `json:"description"`
	ImagePrompts TextList `json:"imagePrompts"`
	Images       []string `json:"images"`
}

type AssemblyGuide struct {
	Tools               TextList       `json:"tools"`
	Steps               []AssemblyStep `json:"steps"`
	CableManagementTips TextList       `json:"cableManagementTips"`
	CommonPitfalls      TextList       `json:"commonPitfalls"`
}

// TextList decodes from either a JSON array of strings or a single string.
type TextList []string

func (t *TextList) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*t = nil
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = TextList{s}
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*t = list
	return nil
}
