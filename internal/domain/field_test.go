package domain

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewName(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Name
		wantErr bool
	}{
		{"plain", "John", "John", false},
		{"trims whitespace", "  Jane Doe  ", "Jane Doe", false},
		{"empty", "", "", true},
		{"whitespace only", "   \t ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewName(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidName) {
					t.Fatalf("NewName(%q) error = %v, want ErrInvalidName", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewName(%q) unexpected error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("NewName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid 10 digits", "1234567890", false},
		{"valid with surrounding spaces", " 0987654321 ", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"too short", "123456789", true},
		{"too long", "12345678901", true},
		{"letters", "12345abcde", true},
		{"internal separator", "123-456-78", true},
		{"unicode digits rejected", "１２３４５６７８９０", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPhone(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPhone) {
					t.Fatalf("NewPhone(%q) error = %v, want ErrInvalidPhone", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewPhone(%q) unexpected error: %v", tt.raw, err)
			}
			if len(got) != 10 {
				t.Errorf("NewPhone(%q) = %q, want 10 digits", tt.raw, got)
			}
		})
	}
}

func TestNewPhoneRoundTrip(t *testing.T) {
	raw := "5551234567"
	p, err := NewPhone(raw)
	if err != nil {
		t.Fatalf("NewPhone(%q) unexpected error: %v", raw, err)
	}
	if p.String() != raw {
		t.Errorf("round trip = %q, want %q", p.String(), raw)
	}
}

func TestNewPhoneFailureReasons(t *testing.T) {
	// Non-digit input must report the digit failure, not the length failure,
	// even when the length is also wrong.
	_, err := NewPhone("12x")
	if err == nil || !errors.Is(err, ErrInvalidPhone) {
		t.Fatalf("NewPhone(\"12x\") error = %v, want ErrInvalidPhone", err)
	}
	if got := err.Error(); !strings.Contains(got, "only digits") {
		t.Errorf("non-digit error = %q, want digit reason", got)
	}

	_, err = NewPhone("123")
	if got := err.Error(); !strings.Contains(got, "10 digits") {
		t.Errorf("short-number error = %q, want length reason", got)
	}
}

func TestNewBirthday(t *testing.T) {
	now := time.Date(2024, 6, 10, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", "24.12.1990", false},
		{"lower year bound", "01.01.1900", false},
		{"today accepted", "10.06.2024", false},
		{"tomorrow rejected", "11.06.2024", true},
		{"year 1899", "31.12.1899", true},
		{"future year", "01.01.2030", true},
		{"wrong separator", "24-12-1990", true},
		{"wrong field order", "1990.12.24", true},
		{"nonsense", "not a date", true},
		{"impossible day", "32.01.2000", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := newBirthdayAt(tt.raw, now)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidBirthday) {
					t.Fatalf("newBirthdayAt(%q) error = %v, want ErrInvalidBirthday", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("newBirthdayAt(%q) unexpected error: %v", tt.raw, err)
			}
			if got.String() != canonical(tt.raw) {
				t.Errorf("birthday = %q, want %q", got.String(), tt.raw)
			}
		})
	}
}

func canonical(s string) string {
	b, _ := time.Parse(BirthdayLayout, s)
	return b.Format(BirthdayLayout)
}

func TestNewBirthdayErrorMessages(t *testing.T) {
	_, err := newBirthdayAt("garbage", time.Now())
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("format error = %v, want invalid format message", err)
	}

	_, err = newBirthdayAt("01.01.1850", time.Now())
	if err == nil || !strings.Contains(err.Error(), "out of range") {
		t.Errorf("range error = %v, want out of range message", err)
	}
}
