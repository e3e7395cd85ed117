package scene

import "fmt"

// Params is an immutable keyed value bag handed to a scene on activation.
// Build one with NewParams and read it with Get / TryGet. A nil *Params is
// valid and behaves as an empty bag.
type Params struct {
	values map[string]any
}

// ParamsBuilder accumulates key/value pairs for a Params. Adding the same
// key twice is a contract violation surfaced by Build.
type ParamsBuilder struct {
	values map[string]any
	err    error
}

// NewParams starts a new builder.
func NewParams() *ParamsBuilder {
	return &ParamsBuilder{values: make(map[string]any)}
}

// Add records a key/value pair. It returns the builder for chaining.
func (b *ParamsBuilder) Add(key string, value any) *ParamsBuilder {
	if b.err != nil {
		return b
	}
	if _, exists := b.values[key]; exists {
		b.err = fmt.Errorf("%w: %q", ErrDuplicateKey, key)
		return b
	}
	b.values[key] = value
	return b
}

// Build finalizes the bag. It fails if any Add hit a duplicate key.
func (b *ParamsBuilder) Build() (*Params, error) {
	if b.err != nil {
		return nil, b.err
	}
	values := make(map[string]any, len(b.values))
	for k, v := range b.values {
		values[k] = v
	}
	return &Params{values: values}, nil
}

// Len returns the number of stored values.
func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.values)
}

// Contains reports whether key is present.
func (p *Params) Contains(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.values[key]
	return ok
}

// Get returns the value stored under key as type T. It fails if the key is
// absent or the stored value has a different type.
func Get[T any](p *Params, key string) (T, error) {
	var zero T
	if p == nil {
		return zero, fmt.Errorf("%w: param %q", ErrNotFound, key)
	}
	raw, ok := p.values[key]
	if !ok {
		return zero, fmt.Errorf("%w: param %q", ErrNotFound, key)
	}
	v, ok := raw.(T)
	if !ok {
		return zero, fmt.Errorf("%w: param %q holds %T", ErrTypeMismatch, key, raw)
	}
	return v, nil
}

// TryGet is the non-throwing variant of Get. The bool result is false when
// the key is absent or holds a value of a different type.
func TryGet[T any](p *Params, key string) (T, bool) {
	v, err := Get[T](p, key)
	return v, err == nil
}
