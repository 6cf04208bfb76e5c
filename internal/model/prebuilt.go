package model

import "time"

// Prebuilt is a configuration published by an engineer for every user to browse.
type Prebuilt struct {
	ID         int64
	EngineerID int64
	Parts      BuildParts
	TotalPrice float64
	Rating     *float64
	CreatedAt  time.Time
	UpdatedAt  time.Time
	// Filled slots expanded into display records; set on listings only.
	Details *ResolvedBuild
}

type SavePrebuiltParams struct {
	EngineerID int64
	// Updates the engineer's existing prebuilt when set.
	PrebuiltID *int64
	Parts      BuildParts
	Rating     *float64
}
