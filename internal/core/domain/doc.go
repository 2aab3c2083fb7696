// Package domain contains the core business entities and errors for papyrus.
// It has no dependencies on adapters or external systems.
package domain
