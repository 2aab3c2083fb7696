package tui

import "errors"

// ErrMissingConvertService is returned when the convert service is not provided.
var ErrMissingConvertService = errors.New("tui: convert service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
