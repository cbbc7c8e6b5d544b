package store

// RawValue is one (name, data) pair as stored in the backing namespace.
type RawValue struct {
	Name string
	Data string
}

// Backend is the capability to enumerate, write, and delete string values
// under the fixed GPU preference namespace.
//
// Contract: Enumerate treats an absent namespace as empty, not an error,
// and yields values in whatever order the backing store produces. Delete
// of an absent value is a silent no-op. Writes or deletes rejected by the
// OS return an error wrapping ErrAccessDenied. Implementations hold no
// resources across calls.
type Backend interface {
	Enumerate() ([]RawValue, error)
	Set(name, data string) error
	Delete(name string) error
}
