package hierarchy

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// CheckProducts verifies that every candidate product is also carried by the
// immediate supplier. Nothing is checked without a supplier or without products.
func CheckProducts(ctx context.Context, c Candidate, lookup LookupFunc) (Result, error) {
	if c.SupplierID == nil || len(c.Products) == 0 {
		return Result{}, nil
	}

	s, err := lookup(ctx, *c.SupplierID)
	if err != nil {
		return Result{}, err
	}
	if s == nil {
		return Result{}, ErrSupplierNotFound
	}

	foreign := missing(c.Products, s.ProductIDs)
	if len(foreign) == 0 {
		return Result{}, nil
	}
	return Result{Violations: []Violation{{
		Kind:     KindForeignProducts,
		Message:  foreignProductsMessage(foreign, s.Name),
		Products: foreign,
	}}}, nil
}

// CheckDependents rejects a product set that drops products still carried by
// links supplied by the candidate. One violation per affected dependent.
func CheckDependents(c Candidate) Result {
	if len(c.Dependents) == 0 {
		return Result{}
	}
	own := make([]uuid.UUID, 0, len(c.Products))
	for _, p := range c.Products {
		own = append(own, p.ID)
	}

	var res Result
	for _, d := range c.Dependents {
		used := missing(d.Products, own)
		if len(used) == 0 {
			continue
		}
		res.Violations = append(res.Violations, Violation{
			Kind:     KindDependentProducts,
			Message:  dependentProductsMessage(used, d.Name),
			Products: used,
		})
	}
	return res
}

// missing returns the names of products whose id is not in allowed, keeping
// the order of products.
func missing(products []Product, allowed []uuid.UUID) []string {
	set := make(map[uuid.UUID]struct{}, len(allowed))
	for _, id := range allowed {
		set[id] = struct{}{}
	}
	var names []string
	seen := make(map[uuid.UUID]struct{}, len(products))
	for _, p := range products {
		if _, ok := set[p.ID]; ok {
			continue
		}
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		names = append(names, p.Name)
	}
	return names
}

func foreignProductsMessage(names []string, supplier string) string {
	if len(names) == 1 {
		return fmt.Sprintf("Продукт %s не принадлежит поставщику %s", names[0], supplier)
	}
	return fmt.Sprintf("Продукты %s не принадлежат поставщику %s", strings.Join(names, ", "), supplier)
}

func dependentProductsMessage(names []string, dependent string) string {
	if len(names) == 1 {
		return fmt.Sprintf("Продукт %s используется звеном %s", names[0], dependent)
	}
	return fmt.Sprintf("Продукты %s используются звеном %s", strings.Join(names, ", "), dependent)
}
