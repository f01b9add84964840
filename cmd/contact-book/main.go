package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/username/contact-book/internal/assistant"
	"github.com/username/contact-book/internal/config"
	"github.com/username/contact-book/internal/storage"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	bookPath   string
	cfg        *config.Config
	logger     *zap.Logger
	output     io.Writer = os.Stdout
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "contact-book",
		Short:         "Personal contact book",
		Long:          "Store contacts with phones and birthdays and see whom to congratulate this week",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
			if bookPath != "" {
				cfg.Book.File = bookPath
			}

			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.GetLevel())
			} else {
				logger, err = initLogger(cfg.Log.GetLevel())
				if err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")
	rootCmd.PersistentFlags().StringVarP(&bookPath, "book", "b", "", "Address book file (overrides book.file)")

	rootCmd.AddCommand(shellCmd())
	rootCmd.AddCommand(
		bookCmd(assistant.CmdHello, "Greet the assistant", cobra.NoArgs),
		bookCmd(assistant.CmdAdd, "Add a contact or a phone to an existing contact", cobra.ExactArgs(2)),
		bookCmd(assistant.CmdChange, "Change a phone of a contact", cobra.ExactArgs(3)),
		bookCmd(assistant.CmdPhone, "Show phones of a contact", cobra.ExactArgs(1)),
		bookCmd(assistant.CmdRemovePhone, "Remove a phone from a contact", cobra.ExactArgs(2)),
		bookCmd(assistant.CmdAddBirthday, "Set the birthday of a contact (DD.MM.YYYY)", cobra.ExactArgs(2)),
		bookCmd(assistant.CmdShowBirthday, "Show the birthday of a contact", cobra.ExactArgs(1)),
		bookCmd(assistant.CmdDelete, "Delete a contact", cobra.ExactArgs(1)),
		bookCmd(assistant.CmdAll, "Show all contacts", cobra.NoArgs),
		birthdaysCmd(),
	)

	return rootCmd
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive assistant (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell()
		},
	}
}

// bookCmd wraps a single assistant command: load, execute, save if it mutates
func bookCmd(name, short string, argsCheck cobra.PositionalArgs) *cobra.Command {
	return &cobra.Command{
		Use:   assistant.Usage(name),
		Short: short,
		Args:  argsCheck,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommand(name, args)
		},
	}
}

func birthdaysCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   assistant.CmdBirthdays,
		Short: "Show upcoming birthdays with congratulation dates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var cmdArgs []string
			if days > 0 {
				cmdArgs = []string{fmt.Sprint(days)}
			}
			return runCommand(assistant.CmdBirthdays, cmdArgs)
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 0, "Look-ahead window in days (default birthdays.window_days)")

	return cmd
}

func runCommand(name string, args []string) error {
	store := newStore()
	book, err := store.Load()
	if err != nil {
		return err
	}

	a := assistant.New(book, cfg.Birthdays.WindowDays, logger)
	text, err := a.Execute(name, args)
	if err != nil {
		fmt.Fprintln(output, assistant.ErrorText(err))
		return nil
	}
	fmt.Fprintln(output, text)

	if assistant.Mutates(name) {
		return store.Save(book)
	}
	return nil
}

func runShell() error {
	store := newStore()
	book, err := store.Load()
	if err != nil {
		return err
	}

	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	a := assistant.New(book, cfg.Birthdays.WindowDays, logger)

	logger.Info("Starting shell",
		zap.String("book", cfg.Book.File),
		zap.Bool("interactive", interactive))

	return assistant.NewShell(a, store, interactive, logger).Run(os.Stdin, output)
}

func newStore() *storage.FileStore {
	// Validated by config.Load
	format, _ := storage.ParseFormat(cfg.Book.Format)
	return storage.NewFileStore(cfg.Book.File, format, logger)
}

func initLogger(level zapcore.Level) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig.TimeKey = "timestamp"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

func initFileLogger(logFile string, level zapcore.Level) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		level,
	)

	return zap.New(core)
}
