package book

import (
	"time"

	"github.com/andy/rolodex/internal/domain"
)

// DefaultBirthdayWindow is the reminder period in days. The inclusion test is
// inclusive on both ends, so the effective window is today through +7.
const DefaultBirthdayWindow = 7

// Upcoming pairs a record with its congratulation date for the current
// reminder window.
type Upcoming struct {
	Record *domain.Record

	// Date is the day to congratulate on. Birthdays that land on a Saturday
	// or Sunday are rolled forward to the following Monday.
	Date time.Time

	// DaysUntil is the distance from the reference date to the projected
	// birthday itself, before any weekend shift.
	DaysUntil int
}

// UpcomingBirthdays returns the records whose next birthday falls within
// periodDays of ref, in the book's insertion order.
//
// Each birthday's month and day are projected onto ref's year, or the next
// year when that date has already passed. A record is included when the
// projected date is at most periodDays away. The weekend roll-forward applies
// only to the reported congratulation date, never to the inclusion test.
func (b *AddressBook) UpcomingBirthdays(periodDays int, ref time.Time) []Upcoming {
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)

	var upcoming []Upcoming
	for _, rec := range b.Records() {
		if rec.Birthday == nil {
			continue
		}

		projected := time.Date(today.Year(), rec.Birthday.Month(), rec.Birthday.Day(), 0, 0, 0, 0, time.UTC)
		if projected.Before(today) {
			projected = time.Date(today.Year()+1, rec.Birthday.Month(), rec.Birthday.Day(), 0, 0, 0, 0, time.UTC)
		}

		daysUntil := int(projected.Sub(today).Hours() / 24)
		if daysUntil > periodDays {
			continue
		}

		congratulation := projected
		switch projected.Weekday() {
		case time.Saturday:
			congratulation = projected.AddDate(0, 0, 2)
		case time.Sunday:
			congratulation = projected.AddDate(0, 0, 1)
		}

		upcoming = append(upcoming, Upcoming{
			Record:    rec,
			Date:      congratulation,
			DaysUntil: daysUntil,
		})
	}
	return upcoming
}
