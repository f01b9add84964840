// Package assistant maps tokenized commands onto address book operations
// and renders their outcomes as user-facing text.
package assistant

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/username/contact-book/internal/addressbook"
	"go.uber.org/zap"
)

var (
	ErrMissingArgs     = errors.New("missing arguments")
	ErrContactNotFound = errors.New("no such contact exists")
	ErrUnknownCommand  = errors.New("invalid command")
)

// Command names understood by Execute
const (
	CmdHello        = "hello"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdRemovePhone  = "remove-phone"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdDelete       = "delete"
	CmdAll          = "all"
)

type handler struct {
	usage   string
	mutates bool
	run     func(a *Assistant, args []string) (string, error)
}

var handlers = map[string]handler{
	CmdHello:        {usage: "", run: (*Assistant).hello},
	CmdAdd:          {usage: "[name] [phone]", mutates: true, run: (*Assistant).addContact},
	CmdChange:       {usage: "[name] [old phone] [new phone]", mutates: true, run: (*Assistant).changeContact},
	CmdPhone:        {usage: "[name]", run: (*Assistant).showPhone},
	CmdRemovePhone:  {usage: "[name] [phone]", mutates: true, run: (*Assistant).removePhone},
	CmdAddBirthday:  {usage: "[name] [DD.MM.YYYY]", mutates: true, run: (*Assistant).addBirthday},
	CmdShowBirthday: {usage: "[name]", run: (*Assistant).showBirthday},
	CmdBirthdays:    {usage: "[days]", run: (*Assistant).birthdays},
	CmdDelete:       {usage: "[name]", mutates: true, run: (*Assistant).deleteContact},
	CmdAll:          {usage: "", run: (*Assistant).all},
}

// Assistant executes commands against one address book
type Assistant struct {
	book       *addressbook.AddressBook
	windowDays int
	logger     *zap.Logger
}

// New creates an assistant. windowDays is the default look-ahead of the birthdays command.
func New(book *addressbook.AddressBook, windowDays int, logger *zap.Logger) *Assistant {
	if windowDays < 1 {
		windowDays = addressbook.DefaultWindowDays
	}
	return &Assistant{
		book:       book,
		windowDays: windowDays,
		logger:     logger,
	}
}

// Book returns the address book the assistant works on
func (a *Assistant) Book() *addressbook.AddressBook {
	return a.book
}

// ParseInput splits a command line into a lowercased command and its arguments
func ParseInput(line string) (string, []string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return "", nil
	}
	return strings.ToLower(fields[0]), fields[1:]
}

// Mutates reports whether command can change the address book
func Mutates(command string) bool {
	return handlers[command].mutates
}

// Usage returns the argument synopsis of command
func Usage(command string) string {
	return strings.TrimSpace(command + " " + handlers[command].usage)
}

// Execute runs command with args and returns the text to show.
// The error message is user-facing as well.
func (a *Assistant) Execute(command string, args []string) (string, error) {
	h, ok := handlers[command]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	a.logger.Debug("Executing command",
		zap.String("command", command),
		zap.Strings("args", args))

	out, err := h.run(a, args)
	if err != nil {
		a.logger.Debug("Command failed",
			zap.String("command", command),
			zap.Error(err))
	}
	return out, err
}

func (a *Assistant) hello(_ []string) (string, error) {
	return "How can I help you?", nil
}

// addContact finds or creates the contact, then adds the phone
func (a *Assistant) addContact(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: give me a name and a phone please", ErrMissingArgs)
	}
	name, phone := args[0], args[1]

	message := "Contact updated."
	record, ok := a.book.Find(name)
	if !ok {
		record = addressbook.NewRecord(name)
		a.book.AddRecord(record)
		message = "Contact added."
	}

	outcome, err := record.AddPhone(phone)
	switch outcome {
	case addressbook.Added:
		a.logger.Info("Phone added", zap.String("name", name))
		return message, nil
	case addressbook.AlreadyExists:
		return "Phone already exists.", nil
	default:
		return fmt.Sprintf("Phone not added: %v.", rejectReason(err)), nil
	}
}

func (a *Assistant) changeContact(args []string) (string, error) {
	if len(args) < 3 {
		return "", fmt.Errorf("%w: give me an existing name, an old phone and a new phone please", ErrMissingArgs)
	}
	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}

	outcome, err := record.EditPhone(args[1], args[2])
	switch outcome {
	case addressbook.Changed:
		a.logger.Info("Phone changed", zap.String("name", args[0]))
		return "Contact updated.", nil
	case addressbook.OldNotFound:
		return "The phone cannot be edited. An old phone is not in the list.", nil
	case addressbook.NewEqualsOld:
		return "An old phone is equal to a new phone. The phone already exists.", nil
	case addressbook.NewAlreadyExists:
		return "A new phone already exists. An old phone deleted.", nil
	default:
		return fmt.Sprintf("Phone not changed: %v.", rejectReason(err)), nil
	}
}

func (a *Assistant) showPhone(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w: give me a name please", ErrMissingArgs)
	}
	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}

	phones := record.Phones()
	if len(phones) == 0 {
		return "unknown", nil
	}
	parts := make([]string, len(phones))
	for i, p := range phones {
		parts[i] = p.String()
	}
	return strings.Join(parts, "; "), nil
}

func (a *Assistant) removePhone(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: give me an existing name and a phone please", ErrMissingArgs)
	}
	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}

	if err := record.RemovePhone(args[1]); err != nil {
		if errors.Is(err, addressbook.ErrNotFound) {
			return "The phone is not in the list.", nil
		}
		return "", fmt.Errorf("phone not removed: %w", rejectReason(err))
	}
	a.logger.Info("Phone removed", zap.String("name", args[0]))
	return "Phone removed.", nil
}

func (a *Assistant) addBirthday(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("%w: give me an existing name and birthday please", ErrMissingArgs)
	}
	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}

	if err := record.AddBirthday(args[1]); err != nil {
		return "", err
	}
	return "Birthday added.", nil
}

func (a *Assistant) showBirthday(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w: give me an existing name please", ErrMissingArgs)
	}
	record, err := a.find(args[0])
	if err != nil {
		return "", err
	}

	birthday, ok := record.Birthday()
	if !ok {
		return "unknown", nil
	}
	return birthday.String(), nil
}

func (a *Assistant) birthdays(args []string) (string, error) {
	days := a.windowDays
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return "", fmt.Errorf("days must be a positive number, got %q", args[0])
		}
		days = n
	}

	upcoming := a.book.UpcomingBirthdays(days)
	if len(upcoming) == 0 {
		return "No upcoming birthdays.", nil
	}
	lines := make([]string, len(upcoming))
	for i, c := range upcoming {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n"), nil
}

func (a *Assistant) deleteContact(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("%w: give me a name please", ErrMissingArgs)
	}
	if err := a.book.Delete(args[0]); err != nil {
		return "", fmt.Errorf("%w: %q", ErrContactNotFound, args[0])
	}
	a.logger.Info("Contact deleted", zap.String("name", args[0]))
	return "Contact deleted.", nil
}

func (a *Assistant) all(_ []string) (string, error) {
	return a.book.String(), nil
}

func (a *Assistant) find(name string) (*addressbook.Record, error) {
	record, ok := a.book.Find(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrContactNotFound, name)
	}
	return record, nil
}

// rejectReason strips the offending value from a validation error
func rejectReason(err error) error {
	switch {
	case errors.Is(err, addressbook.ErrInvalidPhoneFormat):
		return addressbook.ErrInvalidPhoneFormat
	case errors.Is(err, addressbook.ErrInvalidBirthdayFormat):
		return addressbook.ErrInvalidBirthdayFormat
	default:
		return err
	}
}
