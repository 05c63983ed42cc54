package prometheus

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	codecmetrics "github.com/Suhaibinator/httpcodec/pkg/metrics"
)

func TestNewRegistryNilPanics(t *testing.T) {
	assert.Panics(t, func() { NewRegistry(nil, "ns", "sub") })
}

func TestNewCounter(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg, "httpcodec", "test")

	c := r.NewCounter("ops_total", "Total operations.", codecmetrics.Tags{"codec": "status"})
	c.Inc()
	c.Add(2)

	pc, ok := c.(prometheus.Counter)
	require.True(t, ok)
	assert.Equal(t, float64(3), testutil.ToFloat64(pc))
}

func TestNewCounterReusesExisting(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRegistry(reg, "httpcodec", "test")
	tags := codecmetrics.Tags{"codec": "method"}

	a := r.NewCounter("ops_total", "Total operations.", tags)
	b := r.NewCounter("ops_total", "Total operations.", tags)

	a.Inc()
	b.Inc()

	pc, ok := b.(prometheus.Counter)
	require.True(t, ok)
	assert.Equal(t, float64(2), testutil.ToFloat64(pc))
}
