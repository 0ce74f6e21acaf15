package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/csheth/rebus/internal/config"
	"github.com/csheth/rebus/internal/logging"
	"github.com/csheth/rebus/internal/puzzle"
	"github.com/csheth/rebus/internal/tui"
)

var errNotTerminal = errors.New("rebus needs an interactive terminal")

var (
	puzzlePath  string
	envFile     string
	logLevel    string
	logFile     string
	noAltScreen bool
)

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&puzzlePath, "puzzle", "", "puzzle YAML file (default: built-in puzzle)")
	flags.BoolVar(&noAltScreen, "no-alt-screen", false, "disable the alternate screen buffer")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file with REBUS_* settings")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error); empty disables logging")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "log file (default: rebus.log in the temp dir)")

	rootCmd.AddCommand(checkCmd)
}

// resolveSettings layers flags that were set explicitly over config.Load.
func resolveSettings(cmd *cobra.Command) (config.Settings, error) {
	settings, err := config.Load(envFile)
	if err != nil {
		return config.Settings{}, err
	}
	if cmd.Flags().Changed("puzzle") {
		settings.PuzzlePath = puzzlePath
	}
	if cmd.Flags().Changed("no-alt-screen") {
		settings.NoAltScreen = noAltScreen
	}
	if cmd.Flags().Changed("log-level") {
		settings.LogLevel = logLevel
	}
	if cmd.Flags().Changed("log-file") {
		settings.LogFile = logFile
	}
	return settings, nil
}

func loadPuzzle(path string) (puzzle.Definition, error) {
	if path == "" {
		return puzzle.Default(), nil
	}
	return puzzle.Load(path)
}

func runPuzzle(cmd *cobra.Command, args []string) error {
	settings, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	if err := logging.Initialize(settings.LogLevel, settings.LogFile); err != nil {
		return err
	}
	defer logging.Sync()

	def, err := loadPuzzle(settings.PuzzlePath)
	if err != nil {
		return err
	}
	source := settings.PuzzlePath
	if source == "" {
		source = "built-in"
	}
	logging.Info("starting rebus",
		zap.String("version", cmd.Root().Version),
		zap.String("puzzle", source),
		zap.Int("sections", len(def.Sections)),
		zap.Int("letters", def.LetterCount()),
	)

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	opts := []tea.ProgramOption{}
	if !settings.NoAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	program := tea.NewProgram(tui.New(tui.Config{Puzzle: def}), opts...)
	if _, err := program.Run(); err != nil {
		logging.Error("program error", zap.Error(err))
		return fmt.Errorf("program error: %w", err)
	}
	return nil
}

// checkCmd validates a puzzle file without starting the UI.
var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a puzzle file",
	Long: `Parse and validate a puzzle YAML file and print its shape.

Without a file argument the built-in puzzle is checked.`,
	Example: `  # Check the built-in puzzle
  rebus check

  # Check your own puzzle and show the answer
  rebus check my-puzzle.yaml --answer`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

var showAnswer bool

func init() {
	checkCmd.Flags().BoolVar(&showAnswer, "answer", false, "print the answer key")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	def, err := loadPuzzle(path)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	title := def.Title
	if title == "" {
		title = "(untitled)"
	}
	fmt.Fprintf(out, "%s: %d sections, %d letters\n", title, len(def.Sections), def.LetterCount())
	for i, section := range def.Sections {
		fmt.Fprintf(out, "  %d. %d letter(s)  %s\n", i+1, len(section.Letters), section.Hint)
	}
	if showAnswer {
		fmt.Fprintf(out, "Answer: %s\n", def.Answer())
	}
	return nil
}
