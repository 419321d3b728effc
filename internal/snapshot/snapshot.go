package snapshot

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"

	"github.com/andy/rolodex/internal/book"
	"github.com/andy/rolodex/internal/domain"
)

// ErrCorrupt reports a snapshot that exists but cannot be decoded back into
// an address book.
var ErrCorrupt = errors.New("corrupt snapshot")

// contactRow is the wire form of one record. The snapshot format is opaque
// and versionless; phones keep their stored order and duplicates.
type contactRow struct {
	Name     string
	Phones   []string
	Birthday string // BirthdayLayout, empty when unset
}

type payload struct {
	Contacts []contactRow
}

// Encode serializes the whole address book, preserving record order.
func Encode(b *book.AddressBook) ([]byte, error) {
	p := payload{Contacts: make([]contactRow, 0, b.Len())}
	for _, rec := range b.Records() {
		row := contactRow{Name: rec.Name.String()}
		for _, phone := range rec.Phones {
			row.Phones = append(row.Phones, phone.String())
		}
		if rec.Birthday != nil {
			row.Birthday = rec.Birthday.String()
		}
		p.Contacts = append(p.Contacts, row)
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(p); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode rebuilds an address book from snapshot bytes. Any failure, whether
// in the gob stream or in the stored field values, is reported as ErrCorrupt.
func Decode(data []byte) (*book.AddressBook, error) {
	var p payload
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	b := book.New()
	for _, row := range p.Contacts {
		rec, err := domain.NewRecord(row.Name)
		if err != nil {
			return nil, fmt.Errorf("%w: bad name %q", ErrCorrupt, row.Name)
		}
		for _, phone := range row.Phones {
			if err := rec.AddPhone(phone); err != nil {
				return nil, fmt.Errorf("%w: bad phone %q for %q", ErrCorrupt, phone, row.Name)
			}
		}
		if row.Birthday != "" {
			if err := rec.SetBirthday(row.Birthday); err != nil {
				return nil, fmt.Errorf("%w: bad birthday %q for %q", ErrCorrupt, row.Birthday, row.Name)
			}
		}
		b.AddRecord(rec)
	}
	return b, nil
}
