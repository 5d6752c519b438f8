package types

import "encoding/json"

// NullableInt represents an integer field that may be JSON null.
// Pagination envelopes use null for prev_page and next_page when there is
// no adjacent page, which is distinct from page zero.
type NullableInt struct {
	Value int
	Valid bool // Valid is true if the field was present and non-null
}

// Int returns the integer value, or zero when null.
func (ni NullableInt) Int() int {
	if ni.Valid {
		return ni.Value
	}
	return 0
}

// IsNil returns true if the value is null.
func (ni NullableInt) IsNil() bool {
	return !ni.Valid
}

// Set assigns a value and marks the integer as non-null.
func (ni *NullableInt) Set(value int) {
	ni.Value = value
	ni.Valid = true
}

// MarshalJSON encodes the value, or null when the integer is not valid.
func (ni NullableInt) MarshalJSON() ([]byte, error) {
	if ni.Valid {
		return json.Marshal(ni.Value)
	}
	return json.Marshal(nil)
}

// UnmarshalJSON decodes a JSON number or null into the NullableInt.
func (ni *NullableInt) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		ni.Value = 0
		ni.Valid = false
		return nil
	}
	ni.Valid = true
	return json.Unmarshal(data, &ni.Value)
}

// NullableIntFrom creates a non-null NullableInt holding n.
func NullableIntFrom(n int) NullableInt {
	return NullableInt{Value: n, Valid: true}
}

// NullInt creates a NullableInt representing null.
func NullInt() NullableInt {
	return NullableInt{}
}

var _ json.Marshaler = &NullableInt{}
var _ json.Unmarshaler = &NullableInt{}
var _ Nullable = &NullableInt{}
