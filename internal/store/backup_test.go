package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func populated(t *testing.T) (*MemoryBackend, *Store) {
	t.Helper()
	m := NewMemoryBackend()
	s := New(m)
	seed := map[string]Preference{
		`C:\games\one.exe`: HighPerformance,
		`C:\games\two.exe`: PowerSaving,
	}
	for path, pref := range seed {
		if err := s.SetPreference(path, pref); err != nil {
			t.Fatalf("seeding %q: %v", path, err)
		}
	}
	return m, s
}

func TestBackupWritesFlatMapping(t *testing.T) {
	_, s := populated(t)
	dest := filepath.Join(t.TempDir(), "backup.json")

	if err := s.Backup(dest); err != nil {
		t.Fatalf("Backup: %v", err)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading backup file: %v", err)
	}
	var doc map[string]int
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("backup is not valid JSON: %v", err)
	}
	if doc[`C:\games\one.exe`] != 2 || doc[`C:\games\two.exe`] != 1 {
		t.Errorf("unexpected backup document: %v", doc)
	}
	if !strings.Contains(string(data), "\n    ") {
		t.Error("expected 4-space indented output")
	}
}

func TestBackupRestoreRoundTrip(t *testing.T) {
	m, s := populated(t)
	before := entrySet(t, s)

	dest := filepath.Join(t.TempDir(), "backup.json")
	if err := s.Backup(dest); err != nil {
		t.Fatalf("Backup: %v", err)
	}

	// Clear the store out from under the backup, then restore.
	for name := range m.values {
		delete(m.values, name)
	}
	if err := s.Restore(dest); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	after := entrySet(t, s)
	if len(after) != len(before) {
		t.Fatalf("expected %d entries after restore, got %d", len(before), len(after))
	}
	for path, pref := range before {
		if after[path] != pref {
			t.Errorf("entry %q = %v, want %v", path, after[path], pref)
		}
	}
}

func TestRestoreReplacesNotMerges(t *testing.T) {
	m := NewMemoryBackend()
	s := New(m)
	if err := s.SetPreference(`C:\old\a.exe`, PowerSaving); err != nil {
		t.Fatal(err)
	}

	src := filepath.Join(t.TempDir(), "backup.json")
	doc := `{"C:\\new\\b.exe": 2}`
	if err := os.WriteFile(src, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.Restore(src); err != nil {
		t.Fatalf("Restore: %v", err)
	}

	got := entrySet(t, s)
	if len(got) != 1 {
		t.Fatalf("expected exactly 1 entry, got %d: %v", len(got), got)
	}
	if got[`C:\new\b.exe`] != HighPerformance {
		t.Errorf("expected restored entry for C:\\new\\b.exe, got %v", got)
	}
}

func TestRestoreMapsUnknownCodesToPowerSaving(t *testing.T) {
	s := New(NewMemoryBackend())
	src := filepath.Join(t.TempDir(), "backup.json")
	doc := `{"C:\\a.exe": 7, "C:\\b.exe": 2}`
	if err := os.WriteFile(src, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.Restore(src); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	got := entrySet(t, s)
	if got[`C:\a.exe`] != PowerSaving {
		t.Errorf("code 7 should restore as PowerSaving, got %v", got[`C:\a.exe`])
	}
	if got[`C:\b.exe`] != HighPerformance {
		t.Errorf("code 2 should restore as HighPerformance, got %v", got[`C:\b.exe`])
	}
}

func TestRestoreInvalidDocumentLeavesStoreUntouched(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "not json at all"},
		{"array", `[1, 2, 3]`},
		{"nested values", `{"C:\\a.exe": {"pref": 2}}`},
		{"string codes", `{"C:\\a.exe": "2"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, s := populated(t)
			src := filepath.Join(t.TempDir(), "backup.json")
			if err := os.WriteFile(src, []byte(tc.body), 0644); err != nil {
				t.Fatal(err)
			}

			err := s.Restore(src)
			if !errors.Is(err, ErrInvalidBackup) {
				t.Fatalf("expected ErrInvalidBackup, got %v", err)
			}
			if m.Len() != 2 {
				t.Errorf("invalid restore must not mutate the store, got %d entries", m.Len())
			}
		})
	}
}

func TestRestoreMissingFile(t *testing.T) {
	s := New(NewMemoryBackend())
	err := s.Restore(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing source file")
	}
	if errors.Is(err, ErrInvalidBackup) {
		t.Error("missing file should be an I/O error, not a format error")
	}
}

func TestBackupUnwritableDestination(t *testing.T) {
	_, s := populated(t)
	dest := filepath.Join(t.TempDir(), "missing-dir", "backup.json")
	if err := s.Backup(dest); err == nil {
		t.Fatal("expected error writing into a missing directory")
	}
}

func TestRestorePartialFailureLeavesPartialState(t *testing.T) {
	m, s := populated(t)
	src := filepath.Join(t.TempDir(), "backup.json")
	doc := `{"C:\\new\\b.exe": 2}`
	if err := os.WriteFile(src, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	// Deletes succeed, the repopulating write fails: the store is left
	// empty rather than rolled back.
	m.SetErr = errors.New("write rejected")
	if err := s.Restore(src); err == nil {
		t.Fatal("expected restore to surface the write failure")
	}
	if m.Len() != 0 {
		t.Errorf("expected partially-restored (empty) store, got %d entries", m.Len())
	}
}
