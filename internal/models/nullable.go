package models

import "encoding/json"

// Nullable distinguishes the three states a JSON field can be in on a PATCH-like update:
//   - absent:          Set=false, Valid=false
//   - present as null: Set=true,  Valid=false
//   - present:         Set=true,  Valid=true, Value holds it
//
// Pointer fields cannot tell "absent" from "null", which is needed to clear mood or HRV.
type Nullable[T any] struct {
	Value T
	Valid bool
	Set   bool
}

// NullableInt is a tri-state integer field
type NullableInt = Nullable[int]

// NullableFloat64 is a tri-state float field
type NullableFloat64 = Nullable[float64]

// UnmarshalJSON only runs when the field is present
func (n *Nullable[T]) UnmarshalJSON(data []byte) error {
	n.Set = true

	if string(data) == "null" {
		var zero T
		n.Value = zero
		n.Valid = false
		return nil
	}

	if err := json.Unmarshal(data, &n.Value); err != nil {
		return err
	}
	n.Valid = true
	return nil
}

func (n Nullable[T]) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns nil for null or absent, otherwise a pointer to a copy of Value
func (n Nullable[T]) Ptr() *T {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}

// ApplyTo overwrites *dst when the field was present
func (n Nullable[T]) ApplyTo(dst **T) {
	if n.Set {
		*dst = n.Ptr()
	}
}
