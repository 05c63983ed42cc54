// Package prometheus adapts a Prometheus registerer to the metrics.Registry
// interface used by the codec instrumentation.
package prometheus

import (
	"maps"

	"github.com/prometheus/client_golang/prometheus"

	codecmetrics "github.com/Suhaibinator/httpcodec/pkg/metrics"
)

// Registry adapts a prometheus.Registerer to metrics.Registry.
type Registry struct {
	// Use the Registerer interface rather than a concrete registry for
	// broader compatibility and easier testing.
	registry  prometheus.Registerer
	namespace string
	subsystem string
}

// NewRegistry creates a new adapter using a prometheus.Registerer.
func NewRegistry(registry prometheus.Registerer, namespace, subsystem string) *Registry {
	if registry == nil {
		panic("prometheus registry cannot be nil")
	}
	return &Registry{
		registry:  registry,
		namespace: namespace,
		subsystem: subsystem,
	}
}

// NewCounter implements metrics.Registry. Registering the same name and tag
// set twice returns the previously registered counter rather than failing,
// so independent codec wrappers can share a metric.
func (r *Registry) NewCounter(name, description string, tags codecmetrics.Tags) codecmetrics.Counter {
	labels := prometheus.Labels{}
	maps.Copy(labels, tags)

	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace:   r.namespace,
		Subsystem:   r.subsystem,
		Name:        name,
		Help:        description,
		ConstLabels: labels,
	})
	if err := r.registry.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return are.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}
