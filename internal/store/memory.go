package store

// MemoryBackend is an in-memory Backend variant for tests. Enumeration
// order follows Go map iteration and is deliberately unstable, matching
// the "callers must not assume sort order" contract.
type MemoryBackend struct {
	values map[string]string

	// SetErr and DeleteErr, when non-nil, are returned by the
	// corresponding operation to simulate OS-level rejections.
	SetErr    error
	DeleteErr error
}

func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{values: make(map[string]string)}
}

func (m *MemoryBackend) Enumerate() ([]RawValue, error) {
	out := make([]RawValue, 0, len(m.values))
	for name, data := range m.values {
		out = append(out, RawValue{Name: name, Data: data})
	}
	return out, nil
}

func (m *MemoryBackend) Set(name, data string) error {
	if m.SetErr != nil {
		return m.SetErr
	}
	m.values[name] = data
	return nil
}

func (m *MemoryBackend) Delete(name string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.values, name)
	return nil
}

// Len reports the number of stored values.
func (m *MemoryBackend) Len() int { return len(m.values) }

// Get returns the raw stored data for name, for test assertions.
func (m *MemoryBackend) Get(name string) (string, bool) {
	data, ok := m.values[name]
	return data, ok
}
