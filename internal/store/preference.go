package store

import (
	"fmt"
	"strings"
)

// Preference is one of the two GPU-selection modes an executable can be
// assigned. The numeric values are the codes Windows stores.
type Preference int

const (
	PowerSaving     Preference = 1
	HighPerformance Preference = 2
)

// highPerformanceMarker is the literal Windows embeds in a registry value
// for a high-performance assignment.
const highPerformanceMarker = "GpuPreference=2"

// Code returns the small integer code persisted in registry values and
// backup documents.
func (p Preference) Code() int { return int(p) }

func (p Preference) String() string {
	if p == HighPerformance {
		return "high-performance"
	}
	return "power-saving"
}

// RegistryValue returns the formatted string stored in the registry,
// e.g. "GpuPreference=2;".
func (p Preference) RegistryValue() string {
	return fmt.Sprintf("GpuPreference=%d;", p.Code())
}

// FromRegistryValue parses a raw registry value string. A value is
// HighPerformance iff it contains the high-performance marker; everything
// else, malformed values included, defaults to PowerSaving.
func FromRegistryValue(raw string) Preference {
	if strings.Contains(raw, highPerformanceMarker) {
		return HighPerformance
	}
	return PowerSaving
}

// FromCode maps a backup document code to a Preference. Code 2 is
// HighPerformance; any other value defaults to PowerSaving.
func FromCode(code int) Preference {
	if code == HighPerformance.Code() {
		return HighPerformance
	}
	return PowerSaving
}

// ParsePreference parses a user-supplied preference name, accepting the
// forms used on the command line.
func ParsePreference(s string) (Preference, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "power", "power-saving", "powersaving", "1":
		return PowerSaving, nil
	case "performance", "high-performance", "highperformance", "perf", "2":
		return HighPerformance, nil
	}
	return 0, fmt.Errorf("unknown GPU preference %q (want power or performance)", s)
}
