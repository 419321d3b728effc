package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidName     = errors.New("invalid name")
	ErrInvalidPhone    = errors.New("invalid phone number")
	ErrInvalidBirthday = errors.New("invalid birthday")
)

// BirthdayLayout is the only accepted textual date format, e.g. "24.12.1990".
const BirthdayLayout = "02.01.2006"

// Name is a contact's display name and its identity in the address book.
type Name string

// NewName validates and normalizes a raw name. The result is trimmed and
// guaranteed non-empty.
func NewName(raw string) (Name, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: must be a non-empty string", ErrInvalidName)
	}
	return Name(trimmed), nil
}

func (n Name) String() string { return string(n) }

// Phone is a normalized phone number: exactly 10 ASCII digits, no separators.
type Phone string

// NewPhone validates a raw phone number. Digit-only is checked before length
// so the two failure reasons stay distinguishable in the wrapped message.
func NewPhone(raw string) (Phone, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", fmt.Errorf("%w: must be a non-empty string", ErrInvalidPhone)
	}
	for _, c := range trimmed {
		if c < '0' || c > '9' {
			return "", fmt.Errorf("%w: must contain only digits", ErrInvalidPhone)
		}
	}
	if len(trimmed) != 10 {
		return "", fmt.Errorf("%w: must be 10 digits long", ErrInvalidPhone)
	}
	return Phone(trimmed), nil
}

func (p Phone) String() string { return string(p) }

// Birthday is a validated calendar date. Only the date matters; the time of
// day is always midnight UTC.
type Birthday struct {
	date time.Time
}

// NewBirthday parses a birthday in BirthdayLayout and validates that the year
// is 1900 or later and the date is not in the future.
func NewBirthday(raw string) (Birthday, error) {
	return newBirthdayAt(raw, time.Now())
}

// newBirthdayAt is the clock-injected form used by tests. The future check is
// day-granular: a birthday equal to now's date is accepted.
func newBirthdayAt(raw string, now time.Time) (Birthday, error) {
	parsed, err := time.Parse(BirthdayLayout, strings.TrimSpace(raw))
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: invalid format, use DD.MM.YYYY", ErrInvalidBirthday)
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if parsed.Year() < 1900 || parsed.After(today) {
		return Birthday{}, fmt.Errorf("%w: out of range, year must be between 1900 and today", ErrInvalidBirthday)
	}
	return Birthday{date: parsed}, nil
}

// Date returns the birthday as a midnight-UTC time.
func (b Birthday) Date() time.Time { return b.date }

// Month and Day expose the calendar components used for projection.
func (b Birthday) Month() time.Month { return b.date.Month() }
func (b Birthday) Day() int          { return b.date.Day() }

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
