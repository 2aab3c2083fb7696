// Package services implements the conversion core behind the driving
// ports. Services orchestrate readers, converters and stores without
// knowing about CLI, TUI or file-system specifics.
package services
