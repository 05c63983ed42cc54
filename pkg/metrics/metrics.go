// Package metrics provides an interface-based metrics system for the codec
// catalog. The library defines the interfaces and the instrumentation points;
// users provide the implementation, typically through the prometheus adapter
// subpackage. This keeps the separation of concerns: codecs themselves never
// touch metrics — only the optional instrumentation wrapper in pkg/codec
// does.
package metrics

// Tags represents a map of key-value pairs attached to a metric.
type Tags map[string]string

// Counter is a metric that represents a monotonically increasing value.
type Counter interface {
	// Inc increments the counter by 1.
	Inc()

	// Add adds the given value to the counter.
	Add(value float64)
}

// Registry creates metrics. Implementations must be safe for concurrent use.
type Registry interface {
	// NewCounter creates (or fetches) a counter with the given name,
	// description, and constant tags.
	NewCounter(name, description string, tags Tags) Counter
}

// NoopRegistry is a Registry whose metrics discard all observations. It is
// the default wherever no registry is supplied.
type NoopRegistry struct{}

// NewCounter implements Registry.
func (NoopRegistry) NewCounter(name, description string, tags Tags) Counter {
	return noopCounter{}
}

type noopCounter struct{}

func (noopCounter) Inc()              {}
func (noopCounter) Add(value float64) {}
