package repository

import (
	"context"
	"fmt"

	"github.com/andy/rolodex/internal/book"
	"github.com/andy/rolodex/internal/db"
	"github.com/andy/rolodex/internal/domain"
)

// SQLiteArchive is the encrypted-SQLite implementation of ContactArchive
type SQLiteArchive struct {
	db *db.DB
}

// NewSQLiteArchive creates a new SQLiteArchive
func NewSQLiteArchive(database *db.DB) *SQLiteArchive {
	return &SQLiteArchive{db: database}
}

// Export replaces the archive contents with a full copy of the book
func (r *SQLiteArchive) Export(ctx context.Context, b *book.AddressBook) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Phones go first so the contact delete doesn't have to cascade over
	// rows we are about to rewrite anyway
	if _, err := tx.ExecContext(ctx, "DELETE FROM phones"); err != nil {
		return fmt.Errorf("failed to clear phones: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM contacts"); err != nil {
		return fmt.Errorf("failed to clear contacts: %w", err)
	}

	for pos, rec := range b.Records() {
		var birthday *string
		if rec.Birthday != nil {
			s := rec.Birthday.String()
			birthday = &s
		}

		result, err := tx.ExecContext(ctx,
			"INSERT INTO contacts (name, birthday, position) VALUES (?, ?, ?)",
			rec.Name.String(), birthday, pos,
		)
		if err != nil {
			return fmt.Errorf("failed to insert contact %q: %w", rec.Name, err)
		}

		contactID, err := result.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to get contact ID: %w", err)
		}

		for i, phone := range rec.Phones {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO phones (contact_id, value, position) VALUES (?, ?, ?)",
				contactID, phone.String(), i,
			); err != nil {
				return fmt.Errorf("failed to insert phone for %q: %w", rec.Name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit export: %w", err)
	}
	return nil
}

// Import rebuilds an address book from the archive contents
func (r *SQLiteArchive) Import(ctx context.Context) (*book.AddressBook, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, birthday
		FROM contacts
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query contacts: %w", err)
	}
	defer rows.Close()

	type contactRow struct {
		id       int64
		name     string
		birthday *string
	}

	var contacts []contactRow
	for rows.Next() {
		var c contactRow
		if err := rows.Scan(&c.id, &c.name, &c.birthday); err != nil {
			return nil, fmt.Errorf("failed to scan contact: %w", err)
		}
		contacts = append(contacts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating contacts: %w", err)
	}

	b := book.New()
	for _, c := range contacts {
		rec, err := domain.NewRecord(c.name)
		if err != nil {
			return nil, fmt.Errorf("invalid archived contact %q: %w", c.name, err)
		}
		if c.birthday != nil {
			if err := rec.SetBirthday(*c.birthday); err != nil {
				return nil, fmt.Errorf("invalid archived birthday for %q: %w", c.name, err)
			}
		}

		phoneRows, err := r.db.QueryContext(ctx, `
			SELECT value
			FROM phones
			WHERE contact_id = ?
			ORDER BY position
		`, c.id)
		if err != nil {
			return nil, fmt.Errorf("failed to query phones for %q: %w", c.name, err)
		}
		for phoneRows.Next() {
			var value string
			if err := phoneRows.Scan(&value); err != nil {
				phoneRows.Close()
				return nil, fmt.Errorf("failed to scan phone: %w", err)
			}
			if err := rec.AddPhone(value); err != nil {
				phoneRows.Close()
				return nil, fmt.Errorf("invalid archived phone %q for %q: %w", value, c.name, err)
			}
		}
		if err := phoneRows.Err(); err != nil {
			phoneRows.Close()
			return nil, fmt.Errorf("error iterating phones: %w", err)
		}
		phoneRows.Close()

		b.AddRecord(rec)
	}

	return b, nil
}
