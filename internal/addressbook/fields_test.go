package addressbook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"10 digits", "1234567890", false},
		{"9 digits", "123456789", true},
		{"11 digits", "12345678901", true},
		{"empty", "", true},
		{"10 characters not all digits", "12345abcde", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhone(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidPhoneFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.raw, phone.String())
		})
	}
}

func TestPhoneEquality(t *testing.T) {
	assert.Equal(t, MustPhone("1234567890"), MustPhone("1234567890"))
	assert.NotEqual(t, MustPhone("1234567890"), MustPhone("0987654321"))
}

func TestNewBirthday(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    time.Time
		wantErr bool
	}{
		{"valid", "01.02.1990", time.Date(1990, 2, 1, 0, 0, 0, 0, time.UTC), false},
		{"leap day", "29.02.2000", time.Date(2000, 2, 29, 0, 0, 0, 0, time.UTC), false},
		{"invalid calendar date", "30.02.1990", time.Time{}, true},
		{"leap day in common year", "29.02.1990", time.Time{}, true},
		{"unpadded day", "1.02.1990", time.Time{}, true},
		{"two digit year", "01.02.90", time.Time{}, true},
		{"ISO order", "1990-02-01", time.Time{}, true},
		{"trailing text", "01.02.1990x", time.Time{}, true},
		{"empty", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewBirthday(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBirthdayFormat)
				return
			}
			require.NoError(t, err)
			assert.True(t, b.Date().Equal(tt.want), "Date() = %v, want %v", b.Date(), tt.want)
		})
	}
}

func TestBirthdayString(t *testing.T) {
	b, err := NewBirthday("01.02.1990")
	require.NoError(t, err)
	assert.Equal(t, "01.02.1990", b.String())
}

func TestNewName(t *testing.T) {
	assert.Equal(t, "John", NewName("John").String())
}
