package archive

import "context"

type Repository interface {
	// Snapshot reads the entire store into an archive payload.
	Snapshot(context context.Context) (*Payload, error)

	// Restore atomically replaces the entire store with the payload.
	Restore(context context.Context, payload *Payload) error

	// Backup writes a consistent copy of the database file to destination.
	Backup(context context.Context, destination string) error
}
