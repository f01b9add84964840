package addressbook

import "fmt"

// Snapshot is the serializable form of an AddressBook
type Snapshot struct {
	Contacts []ContactSnapshot `json:"contacts" yaml:"contacts"`
}

// ContactSnapshot is the serializable form of a Record.
// Birthday is empty when not set.
type ContactSnapshot struct {
	Name     string   `json:"name" yaml:"name"`
	Phones   []string `json:"phones" yaml:"phones"`
	Birthday string   `json:"birthday,omitempty" yaml:"birthday,omitempty"`
}

// Snapshot captures every record in insertion order
func (b *AddressBook) Snapshot() Snapshot {
	s := Snapshot{Contacts: make([]ContactSnapshot, 0, b.Len())}
	for _, r := range b.Records() {
		c := ContactSnapshot{
			Name:   r.name.String(),
			Phones: make([]string, len(r.phones)),
		}
		for i, p := range r.phones {
			c.Phones[i] = p.value
		}
		if r.birthday != nil {
			c.Birthday = r.birthday.String()
		}
		s.Contacts = append(s.Contacts, c)
	}
	return s
}

// FromSnapshot rebuilds an AddressBook, validating every phone and birthday
func FromSnapshot(s Snapshot, opts ...Option) (*AddressBook, error) {
	b := New(opts...)
	for _, c := range s.Contacts {
		r := NewRecord(c.Name)
		for _, raw := range c.Phones {
			if outcome, err := r.AddPhone(raw); outcome == Rejected {
				return nil, fmt.Errorf("restore contact %q: %w", c.Name, err)
			}
		}
		if c.Birthday != "" {
			if err := r.AddBirthday(c.Birthday); err != nil {
				return nil, fmt.Errorf("restore contact %q: %w", c.Name, err)
			}
		}
		b.AddRecord(r)
	}
	return b, nil
}
