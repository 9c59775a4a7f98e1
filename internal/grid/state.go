package grid

// Update is either a literal next value or a transform of the current
// effective value. Build one with Set or Transform.
type Update[T any] struct {
	value T
	fn    func(T) T
}

// Set returns an update that replaces the current value with v.
func Set[T any](v T) Update[T] { return Update[T]{value: v} }

// Transform returns an update that computes the next value from the current one.
func Transform[T any](fn func(prev T) T) Update[T] { return Update[T]{fn: fn} }

// Apply returns the value that results from applying u to prev.
func (u Update[T]) Apply(prev T) T {
	if u.fn != nil {
		return u.fn(prev)
	}
	return u.value
}

// Source says where a dual-mode value comes from. The zero value is
// Internal: the grid owns the state. External hands ownership to the caller.
type Source[T any] struct {
	value    T
	external bool
}

// External makes v the single source of truth for rendering.
func External[T any](v T) Source[T] { return Source[T]{value: v, external: true} }

// Internal leaves the value to the grid's own state.
func Internal[T any]() Source[T] { return Source[T]{} }

func (s Source[T]) IsExternal() bool { return s.external }

// Value reconciles a caller-controlled value with internal state. Resolve it
// once per render; Get then returns whichever side is authoritative.
//
// Internal state keeps tracking every update even while controlled, so a
// caller that stops supplying the value falls back to the last computed one.
type Value[T any] struct {
	internal T
	source   Source[T]
	onChange func(T)
}

// NewValue returns an uncontrolled value starting at initial.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{internal: initial}
}

// Resolve installs this render's source and change callback.
func (v *Value[T]) Resolve(src Source[T], onChange func(T)) {
	v.source = src
	v.onChange = onChange
}

// Get returns the effective value.
func (v *Value[T]) Get() T {
	if v.source.external {
		return v.source.value
	}
	return v.internal
}

// Internal returns the grid-owned state, whether or not it is authoritative.
func (v *Value[T]) Internal() T { return v.internal }

// Controlled reports whether the caller currently owns the value.
func (v *Value[T]) Controlled() bool { return v.source.external }

// Apply computes the next value from the effective one, records it as
// internal state, and reports it to the change callback.
func (v *Value[T]) Apply(u Update[T]) T {
	next := u.Apply(v.Get())
	v.internal = next
	if v.onChange != nil {
		v.onChange(next)
	}
	return next
}

// Reset replaces internal state without notifying anyone.
func (v *Value[T]) Reset(x T) { v.internal = x }
