// internal/catalog/repo.go
package catalog

import (
	"fmt"
	"slices"

	"github.com/solatis/rulebuilders/internal/config"
	"github.com/solatis/rulebuilders/internal/types"
)

// Repo is an in-memory, read-only customer catalog with contiguous refs.
type Repo struct {
	firstRef  types.CustomerRef
	customers []types.Customer
}

// NewRepo builds the catalog described by cfg. Customer refs run from
// cfg.FirstRef through cfg.FirstRef+cfg.Count-1.
func NewRepo(cfg *config.CatalogConfig) (*Repo, error) {
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	customers := make([]types.Customer, cfg.Count)
	for i := range customers {
		ref := cfg.FirstRef + i
		customers[i] = types.Customer{
			ID:               types.CustomerRef(ref),
			FirstName:        fmt.Sprintf("%s/R%d", cfg.LegalEntity, ref),
			LastName:         cfg.LastName,
			LegalEntityCodes: slices.Repeat([]string{cfg.LegalEntity}, types.LegalEntityCodesPerCustomer),
		}
	}

	return &Repo{firstRef: types.CustomerRef(cfg.FirstRef), customers: customers}, nil
}

// FindByRef returns the customer with the given ref.
// Returns ErrCustomerNotFound for refs outside the catalog.
func (r *Repo) FindByRef(ref types.CustomerRef) (types.Customer, error) {
	idx := int(ref - r.firstRef)
	if idx < 0 || idx >= len(r.customers) {
		return types.Customer{}, fmt.Errorf("ref %d: %w", ref, types.ErrCustomerNotFound)
	}
	return r.customers[idx], nil
}

// FindAll returns every customer in ref order.
func (r *Repo) FindAll() []types.Customer {
	return slices.Clone(r.customers)
}
