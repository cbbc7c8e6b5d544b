// Package store owns all reads and writes against the per-user GPU
// preference namespace. Entries are keyed by normalized executable path and
// hold one of two preference values. The backing namespace is abstracted
// behind the Backend interface so the real Windows registry can be swapped
// for an in-memory fake in tests; every operation is a direct synchronous
// pass-through with no cache and no state held across calls.
package store
