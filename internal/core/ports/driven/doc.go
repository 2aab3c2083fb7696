// Package driven defines the driven port interfaces (secondary ports) for
// the conversion core. Adapters implement these interfaces to provide
// document reading, rendering, persistence and output writing.
package driven
