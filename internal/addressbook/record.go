package addressbook

import (
	"fmt"
	"strings"
)

// Outcome reports which branch of a phone mutation was taken
type Outcome uint8

const (
	Added Outcome = iota + 1
	AlreadyExists
	Rejected
	Changed
	OldNotFound
	NewAlreadyExists
	NewEqualsOld
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case AlreadyExists:
		return "already exists"
	case Rejected:
		return "rejected"
	case Changed:
		return "changed"
	case OldNotFound:
		return "old not found"
	case NewAlreadyExists:
		return "new already exists"
	case NewEqualsOld:
		return "new equals old"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Record holds one contact: a name, unique phones in insertion order and an optional birthday.
type Record struct {
	name     Name
	phones   []Phone
	birthday *Birthday
}

// NewRecord creates a record with no phones and no birthday
func NewRecord(name string) *Record {
	return &Record{name: NewName(name)}
}

// Name returns the contact name
func (r *Record) Name() Name { return r.name }

// Phones returns a copy of the phones in insertion order
func (r *Record) Phones() []Phone {
	phones := make([]Phone, len(r.phones))
	copy(phones, r.phones)
	return phones
}

// Birthday returns the birthday and whether it is set
func (r *Record) Birthday() (Birthday, bool) {
	if r.birthday == nil {
		return Birthday{}, false
	}
	return *r.birthday, true
}

// AddPhone appends raw unless it is malformed or already present.
// A Rejected outcome comes with the validation error.
func (r *Record) AddPhone(raw string) (Outcome, error) {
	phone, err := NewPhone(raw)
	if err != nil {
		return Rejected, err
	}
	if r.indexOf(phone) >= 0 {
		return AlreadyExists, nil
	}
	r.phones = append(r.phones, phone)
	return Added, nil
}

// RemovePhone removes raw from the record.
// Malformed input fails with ErrInvalidPhoneFormat, an absent phone with ErrNotFound.
func (r *Record) RemovePhone(raw string) error {
	phone, err := NewPhone(raw)
	if err != nil {
		return err
	}
	i := r.indexOf(phone)
	if i < 0 {
		return fmt.Errorf("phone %s of %s: %w", phone, r.name, ErrNotFound)
	}
	r.phones = append(r.phones[:i], r.phones[i+1:]...)
	return nil
}

// EditPhone replaces oldRaw with newRaw.
//
// Precedence: OldNotFound if oldRaw is absent; NewEqualsOld if both are the same
// stored number; NewAlreadyExists (old removed) if newRaw is already stored;
// Rejected (old kept) if newRaw is malformed; otherwise Changed.
func (r *Record) EditPhone(oldRaw, newRaw string) (Outcome, error) {
	var oldFound, newFound bool
	for _, p := range r.phones {
		if p.value == oldRaw {
			oldFound = true
		}
		if p.value == newRaw {
			newFound = true
		}
	}

	switch {
	case !oldFound:
		return OldNotFound, nil
	case newFound && oldRaw == newRaw:
		return NewEqualsOld, nil
	case newFound:
		if err := r.RemovePhone(oldRaw); err != nil {
			return Rejected, err
		}
		return NewAlreadyExists, nil
	}

	if outcome, err := r.AddPhone(newRaw); outcome != Added {
		return Rejected, err
	}
	if err := r.RemovePhone(oldRaw); err != nil {
		return Rejected, err
	}
	return Changed, nil
}

// FindPhone returns the stored phone equal to raw. Malformed input is not found.
func (r *Record) FindPhone(raw string) (Phone, bool) {
	for _, p := range r.phones {
		if p.value == raw {
			return p, true
		}
	}
	return Phone{}, false
}

// AddBirthday sets the birthday, replacing any previous one.
// On a parse failure the record is left unchanged.
func (r *Record) AddBirthday(raw string) error {
	birthday, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = &birthday
	return nil
}

func (r *Record) String() string {
	return fmt.Sprintf("Contact name: %s, phones: %s, birthday: %s",
		r.name, joinPhones(r.phones), r.birthdayString())
}

func (r *Record) birthdayString() string {
	if r.birthday == nil {
		return unknown
	}
	return r.birthday.String()
}

func (r *Record) indexOf(phone Phone) int {
	for i, p := range r.phones {
		if p == phone {
			return i
		}
	}
	return -1
}

const unknown = "unknown"

func joinPhones(phones []Phone) string {
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.value
	}
	return strings.Join(parts, "; ")
}
