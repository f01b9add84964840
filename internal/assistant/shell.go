package assistant

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/username/contact-book/internal/storage"
	"go.uber.org/zap"
)

const menu = `Please select one of the following commands.
  hello                              greet the assistant
  add [name] [phone]                 add a contact or a phone
  change [name] [old phone] [new]    change a phone
  phone [name]                       show phones
  remove-phone [name] [phone]        remove a phone
  add-birthday [name] [DD.MM.YYYY]   set the birthday
  show-birthday [name]               show the birthday
  birthdays [days]                   upcoming birthdays with congratulation dates
  delete [name]                      delete a contact
  all                                show all contacts
  close | exit                       save and quit`

// Shell runs the interactive command loop and saves the book when it ends
type Shell struct {
	assistant   *Assistant
	store       storage.Store
	interactive bool
	logger      *zap.Logger
}

// NewShell creates a shell. When interactive is set the menu and prompt are printed.
func NewShell(a *Assistant, store storage.Store, interactive bool, logger *zap.Logger) *Shell {
	return &Shell{
		assistant:   a,
		store:       store,
		interactive: interactive,
		logger:      logger,
	}
}

// Run reads commands from in until close, exit or end of input, then saves
func (s *Shell) Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "Welcome to the assistant bot!")
	if s.interactive {
		fmt.Fprintln(out, menu)
	}

	scanner := bufio.NewScanner(in)
	for {
		if s.interactive {
			fmt.Fprint(out, "Enter a command: ")
		}
		if !scanner.Scan() {
			break
		}

		command, args := ParseInput(scanner.Text())
		if command == "" {
			continue
		}
		if command == "close" || command == "exit" {
			fmt.Fprintln(out, "Good bye!")
			return s.save()
		}

		text, err := s.assistant.Execute(command, args)
		if err != nil {
			fmt.Fprintln(out, ErrorText(err))
			continue
		}
		fmt.Fprintln(out, text)
	}

	if err := scanner.Err(); err != nil {
		s.logger.Error("Failed to read input", zap.Error(err))
		if saveErr := s.save(); saveErr != nil {
			return errors.Join(err, saveErr)
		}
		return fmt.Errorf("failed to read input: %w", err)
	}
	return s.save()
}

func (s *Shell) save() error {
	if err := s.store.Save(s.assistant.Book()); err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}
	return nil
}

// ErrorText renders a command error for display
func ErrorText(err error) string {
	if errors.Is(err, ErrUnknownCommand) {
		return "Invalid command."
	}
	return fmt.Sprintf("Error. %s.", capitalize(err.Error()))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	if s[0] >= 'a' && s[0] <= 'z' {
		return string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
