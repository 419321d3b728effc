package domain

import (
	"errors"
	"fmt"
	"strings"
)

var ErrPhoneNotFound = errors.New("phone number not found")

// Record is one contact: a validated name, an ordered list of phone numbers,
// and an optional birthday. Phones keep insertion order for display and
// duplicates are permitted.
type Record struct {
	Name     Name
	Phones   []Phone
	Birthday *Birthday
}

// NewRecord creates a record with a validated name and no phones.
func NewRecord(name string) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Record{Name: n}, nil
}

// AddPhone validates a raw phone number and appends it. Duplicates are not
// rejected.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.Phones = append(r.Phones, p)
	return nil
}

// RemovePhone validates the raw value as a phone shape, then removes every
// stored phone equal to it. Removing a phone that is not present is not an
// error.
func (r *Record) RemovePhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	kept := r.Phones[:0]
	for _, existing := range r.Phones {
		if existing != p {
			kept = append(kept, existing)
		}
	}
	r.Phones = kept
	return nil
}

// FindPhone validates the raw value and returns the stored phone equal to it,
// or nil if the record has no such phone. Absence is not an error.
func (r *Record) FindPhone(raw string) (*Phone, error) {
	p, err := NewPhone(raw)
	if err != nil {
		return nil, err
	}
	for i := range r.Phones {
		if r.Phones[i] == p {
			return &r.Phones[i], nil
		}
	}
	return nil, nil
}

// EditPhone replaces the first phone equal to oldRaw with the validated
// newRaw. The old value is compared as stored, not re-validated, so a record
// loaded from an older snapshot can still be edited.
func (r *Record) EditPhone(oldRaw, newRaw string) error {
	replacement, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	for i := range r.Phones {
		if string(r.Phones[i]) == oldRaw {
			r.Phones[i] = replacement
			return nil
		}
	}
	return ErrPhoneNotFound
}

// SetBirthday validates and sets the birthday. Last write wins.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.Birthday = &b
	return nil
}

// String renders the record for generic listings. The birthday is left out on
// purpose: it only appears through the birthday commands.
func (r *Record) String() string {
	phones := make([]string, len(r.Phones))
	for i, p := range r.Phones {
		phones[i] = string(p)
	}
	return fmt.Sprintf("Contact name: %s, phones: %s", r.Name, strings.Join(phones, "; "))
}
