package addressbook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	b := New()
	b.AddRecord(newRecord(t, "John", "01.02.1990", "2222222222", "1111111111"))
	b.AddRecord(newRecord(t, "Jane", ""))
	b.AddRecord(newRecord(t, "Bob", "29.02.2000", "3333333333"))

	restored, err := FromSnapshot(b.Snapshot())
	require.NoError(t, err)

	require.Equal(t, b.Len(), restored.Len())
	for i, want := range b.Records() {
		got := restored.Records()[i]
		assert.Equal(t, want.Name(), got.Name())
		assert.Equal(t, want.Phones(), got.Phones())

		wantBirthday, wantOK := want.Birthday()
		gotBirthday, gotOK := got.Birthday()
		assert.Equal(t, wantOK, gotOK)
		assert.Equal(t, wantBirthday.String(), gotBirthday.String())
	}
	assert.Equal(t, b.String(), restored.String())
}

func TestSnapshotOmitsMissingBirthday(t *testing.T) {
	b := New()
	b.AddRecord(NewRecord("Jane"))

	s := b.Snapshot()

	require.Len(t, s.Contacts, 1)
	assert.Equal(t, "", s.Contacts[0].Birthday)
	assert.Empty(t, s.Contacts[0].Phones)
}

func TestFromSnapshotRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name    string
		contact ContactSnapshot
		wantErr error
	}{
		{
			"bad phone",
			ContactSnapshot{Name: "John", Phones: []string{"123"}},
			ErrInvalidPhoneFormat,
		},
		{
			"bad birthday",
			ContactSnapshot{Name: "John", Birthday: "1990-01-01"},
			ErrInvalidBirthdayFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := FromSnapshot(Snapshot{Contacts: []ContactSnapshot{tt.contact}})
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, b)
		})
	}
}

func TestFromSnapshotEmpty(t *testing.T) {
	b, err := FromSnapshot(Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, 0, b.Len())
}
