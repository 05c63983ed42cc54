package codec

import (
	"go.uber.org/zap"

	"github.com/Suhaibinator/httpcodec/pkg/metrics"
)

// Instrument wraps inner with operation counters and optional debug logging.
// Three counters are registered against registry, tagged with the codec
// name: encode operations, decode operations, and decode failures. A nil
// registry falls back to no-op metrics and a nil logger to zap.NewNop, so
// the wrapper is safe with either concern disabled. The wrapped codec keeps
// the contract of the inner one: errors are returned, never swallowed.
func Instrument[T any](name string, inner Codec[T], registry metrics.Registry, logger *zap.Logger) Codec[T] {
	if registry == nil {
		registry = metrics.NoopRegistry{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	tags := metrics.Tags{"codec": name}
	return &instrumented[T]{
		inner:   inner,
		name:    name,
		logger:  logger,
		encodes: registry.NewCounter("codec_encode_total", "Total encode operations.", tags),
		decodes: registry.NewCounter("codec_decode_total", "Total decode operations.", tags),
		failures: registry.NewCounter(
			"codec_decode_failures_total", "Total decode operations rejected with a DecodeError.", tags),
	}
}

type instrumented[T any] struct {
	inner    Codec[T]
	name     string
	logger   *zap.Logger
	encodes  metrics.Counter
	decodes  metrics.Counter
	failures metrics.Counter
}

func (c *instrumented[T]) Encode(v T) any {
	c.encodes.Inc()
	return c.inner.Encode(v)
}

func (c *instrumented[T]) Decode(raw any) (T, error) {
	c.decodes.Inc()
	v, err := c.inner.Decode(raw)
	if err != nil {
		c.failures.Inc()
		c.logger.Debug("decode rejected",
			zap.String("codec", c.name),
			zap.Error(err),
		)
	}
	return v, err
}
