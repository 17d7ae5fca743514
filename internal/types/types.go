// Package types provides domain models shared across rulebuilders components.
//
// Separation from rules: the rules package is generic over its input and
// output types and has no dependency on anything here. This package holds the
// concrete customer catalog model the CLI builds rules over.
package types

// RunID identifies one CLI invocation in log output.
// UUIDv7 string; time-ordered so log lines sort by run.
type RunID string

// CustomerRef is the numeric customer reference.
type CustomerRef int

// Customer is one entry of the in-memory customer catalog.
type Customer struct {
	ID               CustomerRef
	FirstName        string
	LastName         string
	LegalEntityCodes []string // primary code first, then the twelve alternates
}

// Catalog limits.
const (
	// LegalEntityCodesPerCustomer is the primary code plus twelve alternates.
	LegalEntityCodesPerCustomer = 13

	// MaxCatalogSize bounds the in-memory catalog.
	// 1M customers at ~1KB each keeps the process under 1GB.
	MaxCatalogSize = 1_000_000
)

// Output formats for encoded customer lists.
const (
	FormatJSON  = "json"
	FormatProto = "proto"
)
