// Package procs supplies candidate executable paths from the running
// process table for the add-from-running-processes flow.
package procs

import (
	"fmt"
	"sort"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/dannyvoid/gpu-preference/internal/pathutil"
)

// Process is one running-process candidate.
type Process struct {
	PID  int32
	Path string
}

// Enumerator supplies the raw process list. The system implementation is
// swapped for a fake in tests.
type Enumerator interface {
	Running() ([]Process, error)
}

// SystemEnumerator reads the live process table.
type SystemEnumerator struct{}

func (SystemEnumerator) Running() ([]Process, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, fmt.Errorf("listing processes: %w", err)
	}
	out := make([]Process, 0, len(procs))
	for _, p := range procs {
		exe, err := p.Exe()
		if err != nil || exe == "" {
			// System and protected processes refuse the query; skip.
			continue
		}
		out = append(out, Process{PID: p.Pid, Path: exe})
	}
	return out, nil
}

// Candidates returns the unique executables among running processes:
// paths normalized, filtered to absolute .exe paths, deduplicated by
// normalized path (first PID wins), sorted by path for stable display.
func Candidates(e Enumerator) ([]Process, error) {
	running, err := e.Running()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(running))
	out := make([]Process, 0, len(running))
	for _, p := range running {
		path := pathutil.Normalize(p.Path)
		if !pathutil.IsExecutablePath(path) || seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, Process{PID: p.PID, Path: path})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}
