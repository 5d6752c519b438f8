package types

import "encoding/json"

// NullableString represents a string field that may be JSON null.
// The esa API uses null for fields like a post's category when the post
// is uncategorized, which is distinct from an empty string.
type NullableString struct {
	Value string
	Valid bool // Valid is true if the field was present and non-null
}

// String returns the string value, or an empty string when null.
func (ns NullableString) String() string {
	if ns.Valid {
		return ns.Value
	}
	return ""
}

// IsNil returns true if the value is null. An empty string with
// Valid=true is not considered null.
func (ns NullableString) IsNil() bool {
	return !ns.Valid
}

// Set assigns a value and marks the string as non-null.
func (ns *NullableString) Set(value string) {
	ns.Value = value
	ns.Valid = true
}

// MarshalJSON encodes the value, or null when the string is not valid.
func (ns NullableString) MarshalJSON() ([]byte, error) {
	if ns.Valid {
		return json.Marshal(ns.Value)
	}
	return json.Marshal(nil)
}

// UnmarshalJSON decodes a JSON string or null into the NullableString.
func (ns *NullableString) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		ns.Value = ""
		ns.Valid = false
		return nil
	}
	ns.Valid = true
	return json.Unmarshal(data, &ns.Value)
}

// NullableStringFrom creates a non-null NullableString holding s.
func NullableStringFrom(s string) NullableString {
	return NullableString{Value: s, Valid: true}
}

// NullString creates a NullableString representing null.
func NullString() NullableString {
	return NullableString{}
}

var _ json.Marshaler = &NullableString{}
var _ json.Unmarshaler = &NullableString{}
var _ Nullable = &NullableString{}
