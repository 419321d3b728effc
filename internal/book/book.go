package book

import (
	"errors"

	"github.com/andy/rolodex/internal/domain"
)

var ErrContactNotFound = errors.New("contact not found")

// AddressBook is the keyed collection of contact records. Keys are the
// records' normalized names. Iteration follows insertion order, which the
// records map alone cannot provide, so the order slice tracks it.
type AddressBook struct {
	records map[string]*domain.Record
	order   []string
}

// New creates an empty address book.
func New() *AddressBook {
	return &AddressBook{records: make(map[string]*domain.Record)}
}

// AddRecord inserts the record under its normalized name, overwriting any
// existing record with the same name. Overwriting keeps the original position
// in iteration order.
func (b *AddressBook) AddRecord(rec *domain.Record) {
	key := rec.Name.String()
	if _, exists := b.records[key]; !exists {
		b.order = append(b.order, key)
	}
	b.records[key] = rec
}

// Find validates and trims the raw name and returns the matching record, or
// nil if there is none. A missing contact is not an error.
func (b *AddressBook) Find(rawName string) (*domain.Record, error) {
	name, err := domain.NewName(rawName)
	if err != nil {
		return nil, err
	}
	return b.records[name.String()], nil
}

// Delete removes the record stored under the trimmed name.
func (b *AddressBook) Delete(rawName string) error {
	name, err := domain.NewName(rawName)
	if err != nil {
		return err
	}
	key := name.String()
	if _, ok := b.records[key]; !ok {
		return ErrContactNotFound
	}
	delete(b.records, key)
	for i, k := range b.order {
		if k == key {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*domain.Record {
	out := make([]*domain.Record, 0, len(b.order))
	for _, key := range b.order {
		out = append(out, b.records[key])
	}
	return out
}

// Len returns the number of records.
func (b *AddressBook) Len() int { return len(b.records) }
