// Package types defines the birthday record, the Store interface, store
// configuration, and the standard errors shared by the storage backends,
// the registry and the CLI.
package types
