package book

import (
	"testing"
	"time"
)

func withBirthday(t *testing.T, b *AddressBook, name, birthday string) {
	t.Helper()
	rec := mustRecord(t, name)
	if err := rec.SetBirthday(birthday); err != nil {
		t.Fatalf("SetBirthday(%q): %v", birthday, err)
	}
	b.AddRecord(rec)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Monday 2024-06-10 is the reference date used throughout.
var ref = date(2024, time.June, 10)

func TestUpcomingBirthdaysSaturdayShift(t *testing.T) {
	b := New()
	withBirthday(t, b, "John", "15.06.1990") // Saturday 2024-06-15

	got := b.UpcomingBirthdays(7, ref)
	if len(got) != 1 {
		t.Fatalf("upcoming = %d records, want 1", len(got))
	}

	// Inclusion used the unshifted Saturday, five days out.
	if got[0].DaysUntil != 5 {
		t.Errorf("DaysUntil = %d, want 5", got[0].DaysUntil)
	}
	// The reported date rolls forward to Monday.
	if want := date(2024, time.June, 17); !got[0].Date.Equal(want) {
		t.Errorf("congratulation date = %v, want %v", got[0].Date, want)
	}
}

func TestUpcomingBirthdaysSundayShift(t *testing.T) {
	b := New()
	withBirthday(t, b, "Jane", "16.06.1985") // Sunday 2024-06-16

	got := b.UpcomingBirthdays(7, ref)
	if len(got) != 1 {
		t.Fatalf("upcoming = %d records, want 1", len(got))
	}
	if want := date(2024, time.June, 17); !got[0].Date.Equal(want) {
		t.Errorf("congratulation date = %v, want %v", got[0].Date, want)
	}
}

func TestUpcomingBirthdaysWindowBoundary(t *testing.T) {
	b := New()
	withBirthday(t, b, "Edge", "17.06.1990")    // exactly 7 days away
	withBirthday(t, b, "Outside", "18.06.1990") // 8 days away
	withBirthday(t, b, "Today", "10.06.1990")   // 0 days away

	got := b.UpcomingBirthdays(7, ref)
	if len(got) != 2 {
		t.Fatalf("upcoming = %v, want Edge and Today only", names(got))
	}
	if got[0].Record.Name != "Edge" || got[1].Record.Name != "Today" {
		t.Errorf("upcoming = %v, want [Edge Today] in insertion order", names(got))
	}
	if got[0].DaysUntil != 7 || got[1].DaysUntil != 0 {
		t.Errorf("days until = %d, %d, want 7 and 0", got[0].DaysUntil, got[1].DaysUntil)
	}
}

func TestUpcomingBirthdaysYearWrap(t *testing.T) {
	b := New()
	withBirthday(t, b, "NewYear", "02.01.1990")

	// A birthday already past this year projects onto next year.
	got := b.UpcomingBirthdays(7, date(2024, time.December, 28))
	if len(got) != 1 {
		t.Fatalf("upcoming = %d records, want 1", len(got))
	}
	if got[0].DaysUntil != 5 {
		t.Errorf("DaysUntil = %d, want 5", got[0].DaysUntil)
	}
	if want := date(2025, time.January, 2); !got[0].Date.Equal(want) {
		t.Errorf("congratulation date = %v, want %v", got[0].Date, want)
	}
}

func TestUpcomingBirthdaysPassedBirthdayExcluded(t *testing.T) {
	b := New()
	withBirthday(t, b, "Missed", "01.06.1990") // nine days before ref

	if got := b.UpcomingBirthdays(7, ref); len(got) != 0 {
		t.Errorf("upcoming = %v, want empty (projects onto next year)", names(got))
	}
}

func TestUpcomingBirthdaysSkipsRecordsWithoutBirthday(t *testing.T) {
	b := New()
	b.AddRecord(mustRecord(t, "NoBirthday", "1234567890"))
	withBirthday(t, b, "HasBirthday", "12.06.1990")

	got := b.UpcomingBirthdays(7, ref)
	if len(got) != 1 || got[0].Record.Name != "HasBirthday" {
		t.Errorf("upcoming = %v, want only HasBirthday", names(got))
	}
}

func names(ups []Upcoming) []string {
	var out []string
	for _, u := range ups {
		out = append(out, u.Record.Name.String())
	}
	return out
}
