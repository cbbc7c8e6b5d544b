//go:build windows

package store

import (
	"errors"
	"fmt"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
)

// RegPath is the per-user DirectX GPU preference namespace under HKCU.
const RegPath = `Software\Microsoft\DirectX\UserGpuPreferences`

// registryBackend talks to the real Windows registry. A key handle is
// opened and closed inside each call; nothing is held across operations.
type registryBackend struct{}

// OpenSystemBackend returns the HKCU-backed registry backend.
func OpenSystemBackend() (Backend, error) {
	return registryBackend{}, nil
}

func (registryBackend) Enumerate() ([]RawValue, error) {
	k, err := registry.OpenKey(registry.CURRENT_USER, RegPath, registry.QUERY_VALUE|registry.WOW64_64KEY)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening %s: %w", RegPath, err)
	}
	defer k.Close()

	names, err := k.ReadValueNames(-1)
	if err != nil {
		return nil, fmt.Errorf("enumerating %s: %w", RegPath, err)
	}
	out := make([]RawValue, 0, len(names))
	for _, name := range names {
		data, _, err := k.GetStringValue(name)
		if err != nil {
			// Deleted between enumeration and read; skip.
			if errors.Is(err, registry.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("reading value %q: %w", name, err)
		}
		out = append(out, RawValue{Name: name, Data: data})
	}
	return out, nil
}

func (registryBackend) Set(name, data string) error {
	k, _, err := registry.CreateKey(registry.CURRENT_USER, RegPath, registry.SET_VALUE|registry.WOW64_64KEY)
	if err != nil {
		return regErr("creating "+RegPath, err)
	}
	defer k.Close()

	if err := k.SetStringValue(name, data); err != nil {
		return regErr(fmt.Sprintf("writing value %q", name), err)
	}
	return nil
}

func (registryBackend) Delete(name string) error {
	k, err := registry.OpenKey(registry.CURRENT_USER, RegPath, registry.SET_VALUE|registry.WOW64_64KEY)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return nil
		}
		return regErr("opening "+RegPath, err)
	}
	defer k.Close()

	if err := k.DeleteValue(name); err != nil && !errors.Is(err, registry.ErrNotExist) {
		return regErr(fmt.Sprintf("deleting value %q", name), err)
	}
	return nil
}

// regErr wraps registry failures, folding OS permission rejections into
// ErrAccessDenied so callers can match on the error kind.
func regErr(op string, err error) error {
	if errors.Is(err, windows.ERROR_ACCESS_DENIED) {
		return fmt.Errorf("%s: %w: %v", op, ErrAccessDenied, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
