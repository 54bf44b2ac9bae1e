package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder receives lifecycle telemetry. A nil *Prometheus is a valid no-op
// recorder.
type Recorder interface {
	AssetStored(category string)
	AssetDeleted(outcome string)
	Compensated(operation string, assets int)
	Operation(operation, outcome string)
}

const (
	OutcomeDeleted = "deleted"
	OutcomeMissing = "missing"
	OutcomeFailed  = "failed"
)

type Prometheus struct {
	assetsStored  *prometheus.CounterVec
	assetsDeleted *prometheus.CounterVec
	compensations *prometheus.CounterVec
	compensated   *prometheus.CounterVec
	operations    *prometheus.CounterVec
}

func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	p := &Prometheus{
		assetsStored: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitrine",
			Name:      "assets_stored_total",
			Help:      "Assets accepted and written to the blob store.",
		}, []string{"category"}),
		assetsDeleted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitrine",
			Name:      "assets_deleted_total",
			Help:      "Asset delete attempts by outcome.",
		}, []string{"outcome"}),
		compensations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitrine",
			Name:      "compensations_total",
			Help:      "Compensating cleanups issued after a failed record write.",
		}, []string{"operation"}),
		compensated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitrine",
			Name:      "compensated_assets_total",
			Help:      "Assets targeted by compensating cleanups.",
		}, []string{"operation"}),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "vitrine",
			Name:      "lifecycle_operations_total",
			Help:      "Create, update and delete operations by outcome.",
		}, []string{"operation", "outcome"}),
	}

	var err error
	for _, c := range []**prometheus.CounterVec{&p.assetsStored, &p.assetsDeleted, &p.compensations, &p.compensated, &p.operations} {
		if *c, err = register(reg, *c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func register(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register metric: %w", err)
	}
	return c, nil
}

func (p *Prometheus) AssetStored(category string) {
	if p == nil {
		return
	}
	p.assetsStored.WithLabelValues(category).Inc()
}

func (p *Prometheus) AssetDeleted(outcome string) {
	if p == nil {
		return
	}
	p.assetsDeleted.WithLabelValues(outcome).Inc()
}

func (p *Prometheus) Compensated(operation string, assets int) {
	if p == nil {
		return
	}
	p.compensations.WithLabelValues(operation).Inc()
	p.compensated.WithLabelValues(operation).Add(float64(assets))
}

func (p *Prometheus) Operation(operation, outcome string) {
	if p == nil {
		return
	}
	p.operations.WithLabelValues(operation, outcome).Inc()
}

type nop struct{}

func (nop) AssetStored(string)       {}
func (nop) AssetDeleted(string)      {}
func (nop) Compensated(string, int)  {}
func (nop) Operation(string, string) {}

// Nop discards everything.
var Nop Recorder = nop{}
