// Package config provides configuration management for the rulebuilders CLI.
package config

import "github.com/solatis/rulebuilders/internal/types"

// CatalogConfig holds configuration for the in-memory customer catalog and
// its encoded output.
type CatalogConfig struct {
	FirstRef    int
	Count       int
	LastName    string
	LegalEntity string
	Format      string
}

// DefaultCatalogConfig returns configuration with default values.
// Refs 1000000..1001000 inclusive.
func DefaultCatalogConfig() *CatalogConfig {
	return &CatalogConfig{
		FirstRef:    1000000,
		Count:       1001,
		LastName:    "VSH",
		LegalEntity: "ABC",
		Format:      types.FormatJSON,
	}
}
