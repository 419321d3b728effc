package service

import (
	"time"

	"github.com/andy/rolodex/internal/book"
	"github.com/andy/rolodex/internal/domain"
	"github.com/andy/rolodex/internal/snapshot"
)

// BookService owns the live address book and exposes the command-level
// operations. It never prints; rendering errors and results is the caller's
// job.
type BookService interface {
	// Book returns the live address book for read-only queries.
	Book() *book.AddressBook

	// AddContact adds the phone to the named contact, creating the contact
	// first if needed. Reports whether a new contact was created.
	AddContact(name, phone string) (created bool, err error)

	// ChangePhone replaces oldPhone with newPhone on the named contact.
	ChangePhone(name, oldPhone, newPhone string) error

	// RemovePhone removes every copy of the phone from the named contact.
	RemovePhone(name, phone string) error

	// SetBirthday sets the contact's birthday. Last write wins.
	SetBirthday(name, birthday string) error

	// Birthday returns the contact's birthday, or nil if none is set.
	Birthday(name string) (*domain.Birthday, error)

	// Find returns the named record, or nil if absent.
	Find(name string) (*domain.Record, error)

	// Delete removes the named contact.
	Delete(name string) error

	// UpcomingBirthdays returns contacts with birthdays in the next
	// periodDays days, weekend congratulation dates rolled to Monday.
	UpcomingBirthdays(periodDays int) []book.Upcoming

	// Save persists the book to the given snapshot path, or the default
	// when path is empty.
	Save(path string) error

	// Load replaces the live book with the snapshot at the given path, or
	// the default when path is empty. A missing file loads an empty book.
	Load(path string) error

	// Replace swaps in an already-built book, e.g. one imported from the
	// encrypted archive.
	Replace(b *book.AddressBook)
}

type bookService struct {
	book  *book.AddressBook
	store snapshot.Store
}

// NewBookService creates a book service around an existing book and store.
func NewBookService(b *book.AddressBook, store snapshot.Store) BookService {
	return &bookService{book: b, store: store}
}

func (s *bookService) Book() *book.AddressBook {
	return s.book
}

func (s *bookService) AddContact(name, phone string) (bool, error) {
	// Validate the phone before touching the book so a bad number can't
	// leave behind a phoneless contact.
	if _, err := domain.NewPhone(phone); err != nil {
		return false, err
	}

	rec, err := s.book.Find(name)
	if err != nil {
		return false, err
	}

	created := false
	if rec == nil {
		rec, err = domain.NewRecord(name)
		if err != nil {
			return false, err
		}
		s.book.AddRecord(rec)
		created = true
	}

	if err := rec.AddPhone(phone); err != nil {
		return created, err
	}
	return created, nil
}

func (s *bookService) ChangePhone(name, oldPhone, newPhone string) error {
	rec, err := s.book.Find(name)
	if err != nil {
		return err
	}
	if rec == nil {
		return book.ErrContactNotFound
	}
	return rec.EditPhone(oldPhone, newPhone)
}

func (s *bookService) RemovePhone(name, phone string) error {
	rec, err := s.book.Find(name)
	if err != nil {
		return err
	}
	if rec == nil {
		return book.ErrContactNotFound
	}
	return rec.RemovePhone(phone)
}

func (s *bookService) SetBirthday(name, birthday string) error {
	rec, err := s.book.Find(name)
	if err != nil {
		return err
	}
	if rec == nil {
		return book.ErrContactNotFound
	}
	return rec.SetBirthday(birthday)
}

func (s *bookService) Birthday(name string) (*domain.Birthday, error) {
	rec, err := s.book.Find(name)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, book.ErrContactNotFound
	}
	return rec.Birthday, nil
}

func (s *bookService) Find(name string) (*domain.Record, error) {
	return s.book.Find(name)
}

func (s *bookService) Delete(name string) error {
	return s.book.Delete(name)
}

func (s *bookService) UpcomingBirthdays(periodDays int) []book.Upcoming {
	return s.book.UpcomingBirthdays(periodDays, time.Now())
}

func (s *bookService) Save(path string) error {
	return s.store.Save(s.book, path)
}

func (s *bookService) Replace(b *book.AddressBook) {
	s.book = b
}

func (s *bookService) Load(path string) error {
	loaded, err := s.store.Load(path)
	if err != nil {
		return err
	}
	s.book = loaded
	return nil
}
