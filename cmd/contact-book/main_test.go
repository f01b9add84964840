package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	var buf bytes.Buffer
	output = &buf
	t.Cleanup(func() { output = os.Stdout })

	cmd := rootCmd()
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute())
	return strings.TrimSpace(buf.String())
}

func TestCLI_OneShotCommandsPersist(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	book := filepath.Join(t.TempDir(), "book.json")

	assert.Equal(t, "Contact added.", execute(t, "--book", book, "add", "John", "1111111111"))
	assert.Equal(t, "Contact updated.", execute(t, "--book", book, "add", "John", "2222222222"))
	assert.Equal(t, "Birthday added.", execute(t, "--book", book, "add-birthday", "John", "01.02.1990"))
	assert.Equal(t, "1111111111; 2222222222", execute(t, "-b", book, "phone", "John"))
	assert.Equal(t, "01.02.1990", execute(t, "-b", book, "show-birthday", "John"))
	assert.Equal(t, "Contact updated.", execute(t, "-b", book, "change", "John", "1111111111", "3333333333"))
	assert.Equal(t,
		"Address Book\n  Name: John, phone(s): 2222222222; 3333333333, birthday: 01.02.1990",
		execute(t, "-b", book, "all"))
	assert.Equal(t, "Contact deleted.", execute(t, "-b", book, "delete", "John"))
	assert.Equal(t, "Address Book", execute(t, "-b", book, "all"))
}

func TestCLI_ErrorsArePrinted(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	book := filepath.Join(t.TempDir(), "book.yaml")

	assert.Equal(t, `Error. No such contact exists: "Nobody".`, execute(t, "-b", book, "phone", "Nobody"))

	_, err := os.Stat(book)
	assert.True(t, os.IsNotExist(err), "read-only commands must not create the book")
}

func TestCLI_Birthdays(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	book := filepath.Join(t.TempDir(), "book.json")

	execute(t, "-b", book, "add", "John", "1111111111")
	assert.Equal(t, "No upcoming birthdays.", execute(t, "-b", book, "birthdays", "--days", "3"))
}

func TestCLI_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	book := filepath.Join(dir, "contacts.yaml")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("book:\n  file: "+book+"\n"), 0o644))

	assert.Equal(t, "Contact added.", execute(t, "-c", cfgPath, "add", "Jane", "4444444444"))

	data, err := os.ReadFile(book)
	require.NoError(t, err)
	assert.Contains(t, string(data), "name: Jane")
}
