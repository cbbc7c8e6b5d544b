// Package updater checks GitHub for newer releases of the tool. Checks are
// cached on disk so the startup banner never blocks on the network.
package updater

import (
	"net/http"
	"time"
)

// Release is the slice of a GitHub release this tool cares about.
type Release struct {
	Version   string    `json:"tag_name"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Checker performs release lookups for a given current version.
type Checker struct {
	currentVersion string
	httpClient     *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(ch *Checker) {
		ch.httpClient = c
	}
}

// New creates a Checker for the given current version.
func New(currentVersion string, opts ...Option) *Checker {
	ch := &Checker{
		currentVersion: currentVersion,
		httpClient:     http.DefaultClient,
	}
	for _, opt := range opts {
		opt(ch)
	}
	return ch
}
