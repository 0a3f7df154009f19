package domain

import "encoding/json"

// Field is an optional value that distinguishes three states: absent from
// the payload, explicitly null, or set to a value. The distinction matters
// on the wire, where absent fields must be omitted while explicit nulls
// must be sent.
type Field[T any] struct {
	value   T
	present bool
	null    bool
}

// NewField returns a Field holding v.
func NewField[T any](v T) Field[T] {
	return Field[T]{value: v, present: true}
}

// NullField returns a Field holding an explicit null.
func NullField[T any]() Field[T] {
	return Field[T]{present: true, null: true}
}

// IsSet reports whether the field was provided at all (value or null).
func (f Field[T]) IsSet() bool { return f.present }

// IsNull reports whether the field holds an explicit null.
func (f Field[T]) IsNull() bool { return f.present && f.null }

// Value returns the held value; ok is false when the field is absent or null.
func (f Field[T]) Value() (T, bool) {
	if !f.present || f.null {
		var zero T
		return zero, false
	}
	return f.value, true
}

// ValueOr returns the held value or fallback when absent or null.
func (f Field[T]) ValueOr(fallback T) T {
	if v, ok := f.Value(); ok {
		return v
	}
	return fallback
}

// Ptr returns a pointer to the held value, nil when absent or null.
func (f Field[T]) Ptr() *T {
	if v, ok := f.Value(); ok {
		return &v
	}
	return nil
}

// Set stores v and marks the field present.
func (f *Field[T]) Set(v T) {
	f.value = v
	f.present = true
	f.null = false
}

// SetNull marks the field present with an explicit null.
func (f *Field[T]) SetNull() {
	var zero T
	f.value = zero
	f.present = true
	f.null = true
}

// UnmarshalJSON marks the field present; a JSON null becomes an explicit
// null. Absent keys never reach this method and leave the field absent.
func (f *Field[T]) UnmarshalJSON(b []byte) error {
	f.present = true
	if string(b) == "null" {
		f.null = true
		var zero T
		f.value = zero
		return nil
	}
	f.null = false
	return json.Unmarshal(b, &f.value)
}

// MarshalJSON renders the value, or null when the field is absent or null.
func (f Field[T]) MarshalJSON() ([]byte, error) {
	if v, ok := f.Value(); ok {
		return json.Marshal(v)
	}
	return []byte("null"), nil
}
