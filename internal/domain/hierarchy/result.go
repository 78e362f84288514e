package hierarchy

import "strings"

// Kind identifies which rule a violation comes from.
type Kind string

const (
	KindInvalidStatus            Kind = "invalid_status"
	KindFactoryHasSupplierOrDebt Kind = "factory_supplier_or_debt"
	KindSupplierRequired         Kind = "supplier_required"
	KindCycle                    Kind = "supplier_cycle"
	KindDepthExceeded            Kind = "depth_exceeded"
	KindForeignProducts          Kind = "foreign_products"
	KindDependentProducts        Kind = "dependent_products"
)

// Messages are part of the public API and must stay byte-for-byte stable.
const (
	MsgInvalidStatus            = "Недопустимый статус звена"
	MsgFactoryHasSupplierOrDebt = "У завода не может быть Поставщика / Задолженности перед поставщиком"
	MsgSupplierRequired         = "Без поставщика может быть только Завод"
	MsgCycle                    = "Цепочка поставщиков не может содержать циклов"
	MsgDepthExceeded            = "Иерархическая структура не может состоять более чем из 3 уровней"
)

func (k Kind) message() string {
	switch k {
	case KindInvalidStatus:
		return MsgInvalidStatus
	case KindFactoryHasSupplierOrDebt:
		return MsgFactoryHasSupplierOrDebt
	case KindSupplierRequired:
		return MsgSupplierRequired
	case KindCycle:
		return MsgCycle
	case KindDepthExceeded:
		return MsgDepthExceeded
	}
	return string(k)
}

// Violation is one broken rule.
type Violation struct {
	Kind    Kind
	Message string
	// Products names the offending products for the product rules.
	Products []string
}

// Result is the outcome of a validation pass. An empty result means the
// candidate is acceptable.
type Result struct {
	Violations []Violation
}

func (r Result) OK() bool {
	return len(r.Violations) == 0
}

// Messages returns the violation messages in order.
func (r Result) Messages() []string {
	out := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		out = append(out, v.Message)
	}
	return out
}

// Err converts a failed result into a *ValidationError, or nil when OK.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &ValidationError{Violations: r.Violations}
}

// ValidationError carries the violations of a rejected write.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	return strings.Join(Result{Violations: e.Violations}.Messages(), "; ")
}

// Messages returns the violation messages in order.
func (e *ValidationError) Messages() []string {
	return Result{Violations: e.Violations}.Messages()
}
