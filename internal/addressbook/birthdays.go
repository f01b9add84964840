package addressbook

import (
	"fmt"
	"time"

	"github.com/username/contact-book/pkg/dateutil"
)

// DefaultWindowDays is the default look-ahead of UpcomingBirthdays
const DefaultWindowDays = 7

// Congratulation is the date a contact should be congratulated on
type Congratulation struct {
	Name string
	Date time.Time
}

// DateString returns the date as DD.MM.YYYY
func (c Congratulation) DateString() string {
	return dateutil.Format(c.Date)
}

func (c Congratulation) String() string {
	return fmt.Sprintf("%s: %s", c.Name, c.DateString())
}

// UpcomingBirthdays is UpcomingBirthdaysAt for the book's current date
func (b *AddressBook) UpcomingBirthdays(days int) []Congratulation {
	return b.UpcomingBirthdaysAt(b.clock(), days)
}

// UpcomingBirthdaysAt returns the contacts whose next birthday is within
// [today, today+days). Weekend birthdays are congratulated on the following Monday.
// Records without a birthday are skipped. Results follow the book's insertion order.
func (b *AddressBook) UpcomingBirthdaysAt(today time.Time, days int) []Congratulation {
	today = dateutil.CivilDate(today)

	var upcoming []Congratulation
	for _, r := range b.Records() {
		birthday, ok := r.Birthday()
		if !ok {
			continue
		}

		next := occurrenceIn(birthday, today.Year())
		if next.Before(today) {
			next = occurrenceIn(birthday, today.Year()+1)
		}

		diff := dateutil.DaysBetween(today, next)
		if diff < 0 || diff >= days {
			continue
		}

		upcoming = append(upcoming, Congratulation{
			Name: r.Name().String(),
			Date: dateutil.AdjustForWeekend(next),
		})
	}
	return upcoming
}

// occurrenceIn returns the birthday's month and day in the given year.
// 29 February falls on 1 March in non-leap years.
func occurrenceIn(b Birthday, year int) time.Time {
	return time.Date(year, b.date.Month(), b.date.Day(), 0, 0, 0, 0, time.UTC)
}
