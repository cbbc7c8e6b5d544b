//go:build !windows

package store

import "errors"

// OpenSystemBackend is only meaningful on Windows, where the DirectX GPU
// preference namespace lives. Other platforms get an explicit error so the
// CLI can report it; tests use NewMemoryBackend instead.
func OpenSystemBackend() (Backend, error) {
	return nil, errors.New("the GPU preference registry is only available on Windows")
}
