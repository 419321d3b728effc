package repository

import (
	"context"

	"github.com/andy/rolodex/internal/book"
)

// ContactArchive persists whole-book snapshots in the encrypted archive.
// Export and Import each run as a single transaction, so the book is never
// observed half-written.
type ContactArchive interface {
	// Export replaces the archive contents with a full copy of the book.
	Export(ctx context.Context, b *book.AddressBook) error

	// Import rebuilds an address book from the archive contents.
	Import(ctx context.Context) (*book.AddressBook, error)
}
