// Package hierarchy holds the rules that keep the supplier chain of a trading
// network consistent. Everything here is a pure function over a Candidate and
// a LookupFunc returning committed supplier state, so the same rules serve the
// API write path and the model save hook.
package hierarchy

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/tradenet-api/internal/domain/enum"
)

// MaxLevel is the deepest allowed level: factory (0) -> tier 1 -> tier 2.
const MaxLevel = 2

// maxHops bounds every supplier walk so corrupted data cannot loop forever.
const maxHops = 32

var (
	// ErrSupplierNotFound is returned when a referenced supplier does not exist.
	ErrSupplierNotFound = errors.New("hierarchy: supplier not found")
	// ErrCycle is returned by Level when the supplier chain never reaches a root.
	ErrCycle = errors.New("hierarchy: supplier chain contains a cycle")
)

// Supplier is the committed state of a link as seen by the validators.
type Supplier struct {
	ID         uuid.UUID
	Name       string
	SupplierID *uuid.UUID
	Level      int
	ProductIDs []uuid.UUID
}

// LookupFunc loads a supplier by id. It returns (nil, nil) when the id is unknown.
type LookupFunc func(ctx context.Context, id uuid.UUID) (*Supplier, error)

// Product is a product reference carried by a candidate.
type Product struct {
	ID   uuid.UUID
	Name string
}

// Dependent is a link supplied by the candidate, with the products it carries.
type Dependent struct {
	Name     string
	Products []Product
}

// Candidate is a link about to be written.
type Candidate struct {
	// ID is uuid.Nil for links that do not exist yet.
	ID         uuid.UUID
	Status     enum.LinkStatus
	SupplierID *uuid.UUID
	HasDebt    bool
	Products   []Product
	// Height is the depth of the subtree below the candidate, 0 for a leaf.
	Height     int
	Dependents []Dependent
}

// Level walks the supplier chain starting at supplierID and returns the number
// of hops to the root, which is the level a link supplied by supplierID gets.
func Level(ctx context.Context, supplierID *uuid.UUID, lookup LookupFunc) (int, error) {
	level, _, err := walk(ctx, supplierID, uuid.Nil, lookup)
	return level, err
}

// walk returns the hop count from supplierID to the root and whether self was
// met on the way.
func walk(ctx context.Context, supplierID *uuid.UUID, self uuid.UUID, lookup LookupFunc) (int, bool, error) {
	level := 0
	next := supplierID
	for next != nil {
		if self != uuid.Nil && *next == self {
			return level, true, nil
		}
		if level >= maxHops {
			return level, false, ErrCycle
		}
		s, err := lookup(ctx, *next)
		if err != nil {
			return 0, false, err
		}
		if s == nil {
			return 0, false, ErrSupplierNotFound
		}
		level++
		next = s.SupplierID
	}
	return level, false, nil
}

// CheckHierarchy applies the status and depth rules in order; the first
// violation wins. The returned error is reserved for lookup failures.
func CheckHierarchy(ctx context.Context, c Candidate, lookup LookupFunc) (Result, error) {
	if !c.Status.Valid() {
		return fail(KindInvalidStatus), nil
	}
	if c.Status.IsFactory() && (c.SupplierID != nil || c.HasDebt) {
		return fail(KindFactoryHasSupplierOrDebt), nil
	}
	if c.SupplierID == nil {
		if !c.Status.IsFactory() {
			return fail(KindSupplierRequired), nil
		}
		return Result{}, nil
	}

	level, cycle, err := walk(ctx, c.SupplierID, c.ID, lookup)
	if errors.Is(err, ErrCycle) {
		return fail(KindCycle), nil
	}
	if err != nil {
		return Result{}, err
	}
	if cycle {
		return fail(KindCycle), nil
	}
	if level+c.Height > MaxLevel {
		return fail(KindDepthExceeded), nil
	}
	return Result{}, nil
}

// Validate runs every rule and collects the violations: at most one from
// CheckHierarchy, then product ownership and dependent products.
func Validate(ctx context.Context, c Candidate, lookup LookupFunc) (Result, error) {
	var res Result

	h, err := CheckHierarchy(ctx, c, lookup)
	if err != nil {
		return Result{}, err
	}
	res.Violations = append(res.Violations, h.Violations...)

	p, err := CheckProducts(ctx, c, lookup)
	if err != nil {
		return Result{}, err
	}
	res.Violations = append(res.Violations, p.Violations...)

	res.Violations = append(res.Violations, CheckDependents(c).Violations...)
	return res, nil
}

func fail(kind Kind) Result {
	return Result{Violations: []Violation{{Kind: kind, Message: kind.message()}}}
}
