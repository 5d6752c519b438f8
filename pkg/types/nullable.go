// Package types provides nullable value types for fields where the esa API
// distinguishes JSON null from a zero value, such as pagination cursors and
// uncategorized posts.
package types

// Nullable is implemented by types that can represent an explicit null.
// It allows callers to distinguish a zero value from a value the API
// reported as null.
type Nullable interface {
	// IsNil returns true if the value is null.
	IsNil() bool
}
