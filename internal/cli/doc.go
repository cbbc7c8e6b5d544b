// Package cli defines the cobra command tree. Commands are thin: they
// parse flags, open the preference store, and render results; all registry
// semantics live in internal/store.
package cli
