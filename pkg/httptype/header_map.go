package httptype

// HeaderMap is an ordered multi-map from header name to one or more values
// of type T. Insertion order is preserved both across names (first
// appearance wins) and within the values of a single name. The zero value is
// an empty map ready for use; Header is the common instantiation carrying
// validated HeaderValue entries, while other T instantiations carry
// caller-defined per-header payloads.
type HeaderMap[T any] struct {
	names  []HeaderName
	values map[HeaderName][]T
}

// Header is a HeaderMap carrying wire header values.
type Header = HeaderMap[HeaderValue]

// NewHeaderMap returns an empty HeaderMap.
func NewHeaderMap[T any]() HeaderMap[T] {
	return HeaderMap[T]{}
}

// NewHeader returns an empty Header.
func NewHeader() Header {
	return Header{}
}

// Add appends value to the entries for name, creating the name on first use.
func (m *HeaderMap[T]) Add(name HeaderName, value T) {
	if m.values == nil {
		m.values = make(map[HeaderName][]T)
	}
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = append(m.values[name], value)
}

// Set replaces all entries for name with the single value.
func (m *HeaderMap[T]) Set(name HeaderName, value T) {
	if m.values == nil {
		m.values = make(map[HeaderName][]T)
	}
	if _, ok := m.values[name]; !ok {
		m.names = append(m.names, name)
	}
	m.values[name] = []T{value}
}

// Get returns the first value recorded for name.
func (m *HeaderMap[T]) Get(name HeaderName) (T, bool) {
	if vs := m.values[name]; len(vs) > 0 {
		return vs[0], true
	}
	var zero T
	return zero, false
}

// Values returns all values recorded for name, in insertion order. The
// returned slice is the map's own backing; callers must not mutate it.
func (m *HeaderMap[T]) Values(name HeaderName) []T {
	return m.values[name]
}

// Names returns the distinct header names in first-insertion order.
func (m *HeaderMap[T]) Names() []HeaderName {
	return m.names
}

// Len returns the total number of values across all names.
func (m *HeaderMap[T]) Len() int {
	n := 0
	for _, vs := range m.values {
		n += len(vs)
	}
	return n
}

// Range calls fn for each name in insertion order with that name's values.
// Iteration stops early when fn returns false.
func (m *HeaderMap[T]) Range(fn func(name HeaderName, values []T) bool) {
	for _, name := range m.names {
		if !fn(name, m.values[name]) {
			return
		}
	}
}

// Equal reports whether m and o hold the same names mapped to the same value
// sequences, compared with eq. Name order is not significant; the order of
// values within a name is.
func (m *HeaderMap[T]) Equal(o *HeaderMap[T], eq func(a, b T) bool) bool {
	if len(m.names) != len(o.names) {
		return false
	}
	for name, vs := range m.values {
		os, ok := o.values[name]
		if !ok || len(vs) != len(os) {
			return false
		}
		for i := range vs {
			if !eq(vs[i], os[i]) {
				return false
			}
		}
	}
	return true
}
