package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sangkips/tradenet-api/internal/domain/hierarchy"
)

// hierarchyViolations counts rejected link writes.
// Labels: kind (invalid_status, supplier_cycle, depth_exceeded, ...)
var hierarchyViolations = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "hierarchy_violations_total",
	Help: "Link writes rejected by the hierarchy and product validators",
}, []string{"kind"})

func recordViolations(violations []hierarchy.Violation) {
	for _, v := range violations {
		hierarchyViolations.WithLabelValues(string(v.Kind)).Inc()
	}
}
