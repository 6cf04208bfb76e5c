package model

import "errors"

var (
	ErrValidation         = errors.New("validation error")   // 400
	ErrPartNotFound       = errors.New("part not found")     // 404
	ErrBuildNotFound      = errors.New("build not found")    // 404
	ErrPrebuiltNotFound   = errors.New("prebuilt not found") // 404
	ErrUnknownCategory    = errors.New("unknown part category")
	ErrOracleUnavailable  = errors.New("oracle unavailable")
	ErrOracleTimeout      = errors.New("oracle timeout")
	ErrNoJSONFound        = errors.New("no json object in oracle response")
	ErrInvalidJSON        = errors.New("invalid json in oracle response")
	ErrInvalidMotherboard = errors.New("invalid motherboard suggestion")
	ErrImageSearch        = errors.New("image search failed")
)
