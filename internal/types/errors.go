package types

import "errors"

// Sentinel errors for rulebuilders operations.
var (
	// ErrCustomerNotFound indicates no customer has the requested ref.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrUnknownFormat indicates an output format other than json or proto.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrCatalogTooLarge indicates a catalog size above MaxCatalogSize.
	ErrCatalogTooLarge = errors.New("catalog exceeds maximum size")
)
