// Package storage persists recipients, per-user generation settings, and
// broadcast history. The sqlite driver (modernc.org/sqlite, pure Go) is the
// production backend; the memory driver exists for tests.
package storage
