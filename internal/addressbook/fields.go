package addressbook

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/username/contact-book/pkg/dateutil"
)

// PhoneLength is the number of characters a phone number must have
const PhoneLength = 10

var (
	// ErrInvalidPhoneFormat is returned when a phone is not exactly PhoneLength characters
	ErrInvalidPhoneFormat = errors.New("must be 10 digits")
	// ErrInvalidBirthdayFormat is returned when a birthday is not a valid DD.MM.YYYY date
	ErrInvalidBirthdayFormat = errors.New("invalid date format, use DD.MM.YYYY")
	// ErrNotFound is returned when a contact or phone is absent
	ErrNotFound = errors.New("not found")
)

// Name is a contact name. It is also the directory key.
type Name struct {
	value string
}

// NewName wraps raw as a Name
func NewName(raw string) Name {
	return Name{value: raw}
}

func (n Name) String() string { return n.value }

// Phone is a phone number of exactly PhoneLength characters.
// Phones are comparable; two phones are equal iff their numbers are equal.
type Phone struct {
	value string
}

// NewPhone validates raw and returns it as a Phone
func NewPhone(raw string) (Phone, error) {
	if utf8.RuneCountInString(raw) != PhoneLength {
		return Phone{}, fmt.Errorf("phone %q: %w", raw, ErrInvalidPhoneFormat)
	}
	return Phone{value: raw}, nil
}

// MustPhone is like NewPhone but panics on invalid input. Use only in tests.
func MustPhone(raw string) Phone {
	p, err := NewPhone(raw)
	if err != nil {
		panic(err)
	}
	return p
}

func (p Phone) String() string { return p.value }

// Birthday is a calendar date parsed from DD.MM.YYYY
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw in DD.MM.YYYY form
func NewBirthday(raw string) (Birthday, error) {
	date, err := time.Parse(dateutil.Layout, raw)
	if err != nil {
		return Birthday{}, fmt.Errorf("birthday %q: %w", raw, ErrInvalidBirthdayFormat)
	}
	return Birthday{date: date}, nil
}

// Date returns the birthday as midnight UTC
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) String() string {
	return dateutil.Format(b.date)
}
