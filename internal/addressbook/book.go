// Package addressbook implements the contact directory: validated fields,
// contact records and the upcoming birthday query.
package addressbook

import (
	"fmt"
	"strings"
	"time"

	"github.com/username/contact-book/pkg/dateutil"
)

// AddressBook maps contact names to records.
// Keys keep their insertion order; every key equals its record's name.
type AddressBook struct {
	records map[string]*Record
	order   []string
	clock   func() time.Time
}

// Option configures an AddressBook
type Option func(*AddressBook)

// WithClock overrides the source of "today" used by UpcomingBirthdays
func WithClock(clock func() time.Time) Option {
	return func(b *AddressBook) {
		b.clock = clock
	}
}

// New creates an empty address book
func New(opts ...Option) *AddressBook {
	b := &AddressBook{
		records: make(map[string]*Record),
		clock:   dateutil.Today,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRecord stores the record under its name, replacing any record with the same name.
// A replaced key keeps its position.
func (b *AddressBook) AddRecord(r *Record) {
	key := r.Name().String()
	if _, ok := b.records[key]; !ok {
		b.order = append(b.order, key)
	}
	b.records[key] = r
}

// Find returns the record with exactly this name
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record with exactly this name
func (b *AddressBook) Delete(name string) error {
	if _, ok := b.records[name]; !ok {
		return fmt.Errorf("contact %q: %w", name, ErrNotFound)
	}
	delete(b.records, name)
	for i, key := range b.order {
		if key == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
	return nil
}

// Records returns all records in insertion order
func (b *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(b.order))
	for _, key := range b.order {
		records = append(records, b.records[key])
	}
	return records
}

// Len returns the number of records
func (b *AddressBook) Len() int {
	return len(b.order)
}

func (b *AddressBook) String() string {
	var sb strings.Builder
	sb.WriteString("Address Book")
	for _, r := range b.Records() {
		phones := unknown
		if len(r.phones) > 0 {
			phones = joinPhones(r.phones)
		}
		fmt.Fprintf(&sb, "\n  Name: %s, phone(s): %s, birthday: %s",
			r.name, phones, r.birthdayString())
	}
	return sb.String()
}
