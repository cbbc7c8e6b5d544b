// Package pathutil canonicalizes Windows executable paths into the stable
// string form used as registry value names and backup document keys.
//
// The rules are applied regardless of build host: registry entries and
// backup files always contain Windows paths, so normalization must produce
// identical output everywhere.
package pathutil

import "strings"

const sep = '\\'

// Normalize canonicalizes a path string: forward slashes become
// backslashes, empty/"."/".." segments are resolved, and a drive letter in
// the first position is upper-cased. The result is deterministic and
// idempotent for any input; no filesystem access is performed.
func Normalize(path string) string {
	if path == "" {
		return "."
	}
	p := strings.ReplaceAll(path, "/", `\`)

	// Verbatim and device paths are opaque and left untouched.
	if strings.HasPrefix(p, `\\?\`) || strings.HasPrefix(p, `\\.\`) {
		return p
	}

	drive, rest := SplitDrive(p)
	rooted := strings.HasPrefix(rest, `\`)

	var parts []string
	for _, c := range strings.Split(rest, `\`) {
		switch {
		case c == "" || c == ".":
			// collapse
		case c == "..":
			if n := len(parts); n > 0 && parts[n-1] != ".." {
				parts = parts[:n-1]
			} else if !rooted {
				parts = append(parts, "..")
			}
		default:
			parts = append(parts, c)
		}
	}

	p = drive
	if rooted {
		p += `\`
	}
	p += strings.Join(parts, `\`)
	if p == "" {
		p = "."
	}
	if len(p) >= 2 && p[1] == ':' {
		p = strings.ToUpper(p[:1]) + p[1:]
	}
	return p
}

// SplitDrive splits a path into its drive or UNC share prefix and the
// remainder. Paths without a recognizable prefix return an empty drive.
func SplitDrive(p string) (drive, rest string) {
	if len(p) < 2 {
		return "", p
	}
	if p[1] == ':' && isDriveLetter(p[0]) {
		return p[:2], p[2:]
	}
	if p[0] == byte(sep) && p[1] == byte(sep) {
		// UNC prefix is \\host\share.
		i := strings.IndexByte(p[2:], sep)
		if i < 0 {
			return "", p
		}
		i += 2
		j := strings.IndexByte(p[i+1:], sep)
		if j == 0 {
			return "", p
		}
		if j < 0 {
			return p, ""
		}
		j += i + 1
		return p[:j], p[j:]
	}
	return "", p
}

// IsAbs reports whether the path is absolute: a drive-rooted path, a UNC
// share path, or a verbatim/device path.
func IsAbs(path string) bool {
	p := strings.ReplaceAll(path, "/", `\`)
	if strings.HasPrefix(p, `\\?\`) || strings.HasPrefix(p, `\\.\`) {
		return true
	}
	drive, rest := SplitDrive(p)
	if strings.HasPrefix(drive, `\\`) {
		return true
	}
	return strings.HasPrefix(rest, `\`)
}

// IsExecutablePath reports whether the path is absolute and carries the
// .exe extension (case-insensitive). It never touches the filesystem.
func IsExecutablePath(path string) bool {
	return IsAbs(path) && strings.HasSuffix(strings.ToLower(path), ".exe")
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
