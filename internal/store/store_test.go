package store

import (
	"errors"
	"fmt"
	"testing"
)

func entrySet(t *testing.T, s *Store) map[string]Preference {
	t.Helper()
	entries, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	out := make(map[string]Preference, len(entries))
	for _, e := range entries {
		out[e.Path] = e.Preference
	}
	return out
}

func TestReadAllEmpty(t *testing.T) {
	s := New(NewMemoryBackend())
	entries, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected empty store, got %d entries", len(entries))
	}
}

func TestSetThenReadRoundTrip(t *testing.T) {
	s := New(NewMemoryBackend())

	want := map[string]Preference{
		`C:\games\one.exe`:   HighPerformance,
		`C:\games\two.exe`:   PowerSaving,
		`D:\tools\three.exe`: HighPerformance,
	}
	for path, pref := range want {
		if err := s.SetPreference(path, pref); err != nil {
			t.Fatalf("SetPreference(%q): %v", path, err)
		}
	}

	got := entrySet(t, s)
	if len(got) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(got))
	}
	for path, pref := range want {
		if got[path] != pref {
			t.Errorf("entry %q = %v, want %v", path, got[path], pref)
		}
	}
}

func TestSetNormalizesPath(t *testing.T) {
	m := NewMemoryBackend()
	s := New(m)

	if err := s.SetPreference(`C:/games/app.exe`, HighPerformance); err != nil {
		t.Fatalf("SetPreference: %v", err)
	}

	entries, err := s.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Path != `C:\games\app.exe` {
		t.Errorf("stored path %q, want %q", entries[0].Path, `C:\games\app.exe`)
	}
	if entries[0].Preference != HighPerformance {
		t.Errorf("stored preference %v, want HighPerformance", entries[0].Preference)
	}

	data, ok := m.Get(`C:\games\app.exe`)
	if !ok {
		t.Fatal("expected value under normalized name")
	}
	if data != "GpuPreference=2;" {
		t.Errorf("raw value %q, want %q", data, "GpuPreference=2;")
	}
}

func TestOverwriteKeepsOneEntry(t *testing.T) {
	m := NewMemoryBackend()
	s := New(m)

	path := `C:\games\app.exe`
	if err := s.SetPreference(path, HighPerformance); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := s.SetPreference(path, PowerSaving); err != nil {
		t.Fatalf("second set: %v", err)
	}

	if m.Len() != 1 {
		t.Fatalf("expected 1 stored value, got %d", m.Len())
	}
	got := entrySet(t, s)
	if got[path] != PowerSaving {
		t.Errorf("entry = %v, want PowerSaving", got[path])
	}
}

func TestDuplicateSpellingsCollapse(t *testing.T) {
	m := NewMemoryBackend()
	s := New(m)

	if err := s.SetPreference(`C:\games\app.exe`, PowerSaving); err != nil {
		t.Fatal(err)
	}
	if err := s.SetPreference(`c:/games/sub/../app.exe`, HighPerformance); err != nil {
		t.Fatal(err)
	}

	if m.Len() != 1 {
		t.Fatalf("expected duplicate spellings to collapse to 1 entry, got %d", m.Len())
	}
	got := entrySet(t, s)
	if got[`C:\games\app.exe`] != HighPerformance {
		t.Errorf("entry = %v, want HighPerformance", got[`C:\games\app.exe`])
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	m := NewMemoryBackend()
	s := New(m)

	if err := s.SetPreference(`C:\games\app.exe`, PowerSaving); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(`C:\never\stored.exe`); err != nil {
		t.Fatalf("deleting absent path: %v", err)
	}
	if m.Len() != 1 {
		t.Errorf("expected store unchanged, got %d entries", m.Len())
	}
}

func TestDeleteRemovesEntry(t *testing.T) {
	m := NewMemoryBackend()
	s := New(m)

	if err := s.SetPreference(`C:\games\app.exe`, PowerSaving); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(`C:/games/app.exe`); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if m.Len() != 0 {
		t.Errorf("expected empty store, got %d entries", m.Len())
	}
}

func TestMalformedValuesReadAsPowerSaving(t *testing.T) {
	m := NewMemoryBackend()
	m.values[`C:\a.exe`] = ""
	m.values[`C:\b.exe`] = "GpuPreference=1;"
	m.values[`C:\c.exe`] = "garbage"
	m.values[`C:\d.exe`] = "GpuPreference=2;"

	got := entrySet(t, New(m))
	for _, path := range []string{`C:\a.exe`, `C:\b.exe`, `C:\c.exe`} {
		if got[path] != PowerSaving {
			t.Errorf("%s = %v, want PowerSaving", path, got[path])
		}
	}
	if got[`C:\d.exe`] != HighPerformance {
		t.Errorf("C:\\d.exe = %v, want HighPerformance", got[`C:\d.exe`])
	}
}

func TestSetErrorPropagates(t *testing.T) {
	m := NewMemoryBackend()
	m.SetErr = fmt.Errorf("writing value: %w", ErrAccessDenied)

	err := New(m).SetPreference(`C:\games\app.exe`, HighPerformance)
	if !errors.Is(err, ErrAccessDenied) {
		t.Errorf("expected ErrAccessDenied, got %v", err)
	}
}
