// Package driving defines the driving port interfaces (primary ports) that
// the CLI and TUI adapters call into the conversion core.
package driving
