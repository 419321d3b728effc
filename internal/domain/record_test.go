package domain

import (
	"errors"
	"testing"
)

func mustRecord(t *testing.T, name string) *Record {
	t.Helper()
	r, err := NewRecord(name)
	if err != nil {
		t.Fatalf("NewRecord(%q) unexpected error: %v", name, err)
	}
	return r
}

func TestNewRecord(t *testing.T) {
	r := mustRecord(t, "  John  ")
	if r.Name != "John" {
		t.Errorf("name = %q, want trimmed %q", r.Name, "John")
	}
	if len(r.Phones) != 0 || r.Birthday != nil {
		t.Errorf("new record should have no phones and no birthday")
	}

	if _, err := NewRecord("   "); !errors.Is(err, ErrInvalidName) {
		t.Errorf("NewRecord(whitespace) error = %v, want ErrInvalidName", err)
	}
}

func TestRecordAddPhone(t *testing.T) {
	r := mustRecord(t, "John")

	if err := r.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone: %v", err)
	}
	if err := r.AddPhone("bad"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("AddPhone(bad) error = %v, want ErrInvalidPhone", err)
	}
	if len(r.Phones) != 1 {
		t.Fatalf("phones = %v, want one entry", r.Phones)
	}

	// Duplicates are permitted.
	if err := r.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone duplicate: %v", err)
	}
	if len(r.Phones) != 2 {
		t.Errorf("phones = %v, want duplicate kept", r.Phones)
	}
}

func TestRecordRemovePhone(t *testing.T) {
	r := mustRecord(t, "John")
	for _, p := range []string{"1111111111", "2222222222", "1111111111"} {
		if err := r.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q): %v", p, err)
		}
	}

	// Removes every matching value, not just the first.
	if err := r.RemovePhone("1111111111"); err != nil {
		t.Fatalf("RemovePhone: %v", err)
	}
	if len(r.Phones) != 1 || r.Phones[0] != "2222222222" {
		t.Errorf("phones after remove = %v, want [2222222222]", r.Phones)
	}

	// Removing an absent number is not an error.
	if err := r.RemovePhone("9999999999"); err != nil {
		t.Errorf("RemovePhone(absent) = %v, want nil", err)
	}

	// An invalid shape is.
	if err := r.RemovePhone("12"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("RemovePhone(invalid) = %v, want ErrInvalidPhone", err)
	}
}

func TestRecordFindPhone(t *testing.T) {
	r := mustRecord(t, "John")
	if err := r.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone: %v", err)
	}

	p, err := r.FindPhone("1234567890")
	if err != nil {
		t.Fatalf("FindPhone: %v", err)
	}
	if p == nil || *p != "1234567890" {
		t.Errorf("FindPhone = %v, want 1234567890", p)
	}

	p, err = r.FindPhone("0000000000")
	if err != nil {
		t.Fatalf("FindPhone(absent): %v", err)
	}
	if p != nil {
		t.Errorf("FindPhone(absent) = %v, want nil", p)
	}

	if _, err := r.FindPhone("nope"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("FindPhone(invalid) error = %v, want ErrInvalidPhone", err)
	}
}

func TestRecordEditPhone(t *testing.T) {
	r := mustRecord(t, "John")
	if err := r.AddPhone("1234567890"); err != nil {
		t.Fatalf("AddPhone: %v", err)
	}

	if err := r.EditPhone("0000000000", "5555555555"); !errors.Is(err, ErrPhoneNotFound) {
		t.Errorf("EditPhone(missing old) = %v, want ErrPhoneNotFound", err)
	}

	if err := r.EditPhone("1234567890", "123"); !errors.Is(err, ErrInvalidPhone) {
		t.Errorf("EditPhone(bad new) = %v, want ErrInvalidPhone", err)
	}

	if err := r.EditPhone("1234567890", "5555555555"); err != nil {
		t.Fatalf("EditPhone: %v", err)
	}

	p, err := r.FindPhone("5555555555")
	if err != nil || p == nil {
		t.Errorf("FindPhone(new) = %v, %v, want match", p, err)
	}
	p, err = r.FindPhone("1234567890")
	if err != nil || p != nil {
		t.Errorf("FindPhone(old) = %v, %v, want nil", p, err)
	}
}

func TestRecordEditPhoneReplacesFirstMatch(t *testing.T) {
	r := mustRecord(t, "John")
	for _, p := range []string{"1111111111", "1111111111"} {
		if err := r.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q): %v", p, err)
		}
	}

	if err := r.EditPhone("1111111111", "2222222222"); err != nil {
		t.Fatalf("EditPhone: %v", err)
	}
	if r.Phones[0] != "2222222222" || r.Phones[1] != "1111111111" {
		t.Errorf("phones = %v, want only first occurrence replaced", r.Phones)
	}
}

func TestRecordSetBirthday(t *testing.T) {
	r := mustRecord(t, "John")

	if err := r.SetBirthday("24.12.1990"); err != nil {
		t.Fatalf("SetBirthday: %v", err)
	}
	if r.Birthday == nil || r.Birthday.String() != "24.12.1990" {
		t.Errorf("birthday = %v, want 24.12.1990", r.Birthday)
	}

	// Last write wins.
	if err := r.SetBirthday("01.01.1980"); err != nil {
		t.Fatalf("SetBirthday overwrite: %v", err)
	}
	if r.Birthday.String() != "01.01.1980" {
		t.Errorf("birthday = %v, want overwrite to 01.01.1980", r.Birthday)
	}

	if err := r.SetBirthday("1990-12-24"); !errors.Is(err, ErrInvalidBirthday) {
		t.Errorf("SetBirthday(bad) = %v, want ErrInvalidBirthday", err)
	}
}

func TestRecordString(t *testing.T) {
	r := mustRecord(t, "John")
	for _, p := range []string{"1234567890", "5555555555"} {
		if err := r.AddPhone(p); err != nil {
			t.Fatalf("AddPhone(%q): %v", p, err)
		}
	}
	if err := r.SetBirthday("24.12.1990"); err != nil {
		t.Fatalf("SetBirthday: %v", err)
	}

	want := "Contact name: John, phones: 1234567890; 5555555555"
	if got := r.String(); got != want {
		t.Errorf("String() = %q, want %q (birthday omitted)", got, want)
	}
}
