package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/san-kum/skim/internal/clip"
	"github.com/san-kum/skim/internal/config"
	"github.com/san-kum/skim/internal/notes"
	"github.com/san-kum/skim/internal/reader"
	"github.com/san-kum/skim/internal/render"
	"github.com/san-kum/skim/internal/tui"
)

var (
	configFile string
	verbose    bool
	pace       int
	skipSize   int
	fromClip   bool
	project    string
	company    string
	attendees  []string
	asDataURI  bool

	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skim",
		Short: "note capture and RSVP speed reading",
		Long: `skim captures quick markdown notes into a single file and speed-reads
arbitrary text one word at a time, with each word's optimal recognition
point highlighted and pinned to the center of the view.

Run without arguments to start reading the clipboard.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The reader runs its own UI; logging would fight the terminal.
			if cmd.Name() == "read" || cmd.Name() == "skim" {
				return nil
			}
			c := zap.NewProductionConfig()
			if verbose {
				c.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = c.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: runRead,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	readCmd := &cobra.Command{
		Use:   "read [file|-]",
		Short: "speed-read the clipboard, a file, or stdin",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRead,
	}
	readCmd.Flags().IntVar(&pace, "pace", config.DefaultPace, "pace in words per minute")
	readCmd.Flags().IntVar(&skipSize, "skip", config.DefaultSkipSize, "seek jump size in words")

	frameCmd := &cobra.Command{
		Use:   "frame [word]",
		Short: "emit the SVG frame for a single word",
		Args:  cobra.ExactArgs(1),
		RunE:  runFrame,
	}
	frameCmd.Flags().BoolVar(&asDataURI, "data-uri", false, "emit a base64 data URI instead of raw SVG")

	noteCmd := &cobra.Command{
		Use:   "note [kind] [text...]",
		Short: "append a note entry (idea, task, meeting, people, learning)",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runNote,
	}
	noteCmd.Flags().BoolVar(&fromClip, "from-clipboard", false, "take the note text from the clipboard")
	noteCmd.Flags().StringVar(&project, "project", "", "project tag (task)")
	noteCmd.Flags().StringVar(&company, "company", "", "company prefix (meeting)")
	noteCmd.Flags().StringSliceVar(&attendees, "attendee", nil, "attendee name (meeting, people); repeatable")

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "render the notes file in the terminal",
		RunE:  runShow,
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "write a default config file",
		RunE:  runInit,
	}

	rootCmd.AddCommand(readCmd, frameCmd, noteCmd, showCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads --config when given, falls back to the default path,
// and finally to built-in defaults when no file exists.
func loadConfig() (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	cfg, err := config.Load(config.DefaultPath())
	if os.IsNotExist(err) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

func runRead(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if !cmd.Flags().Changed("pace") {
		pace = cfg.Reader.Pace
	}
	if !cmd.Flags().Changed("skip") {
		skipSize = cfg.Reader.SkipSize
	}

	return tui.Run(reader.New(pace), newSource(args, os.Stdin), skipSize)
}

// newSource picks where the text comes from: the clipboard by default,
// stdin for "-", otherwise the named file. Reloads inside the session
// re-run the same source, so stdin is drained once and replayed.
func newSource(args []string, stdin io.Reader) tui.Source {
	if len(args) == 0 {
		return clip.Read
	}
	if args[0] == "-" {
		var once sync.Once
		var text string
		var readErr error
		return func() (string, error) {
			once.Do(func() {
				data, err := io.ReadAll(stdin)
				text, readErr = string(data), err
			})
			return text, readErr
		}
	}
	path := args[0]
	return func() (string, error) {
		data, err := os.ReadFile(path)
		return string(data), err
	}
}

func runFrame(cmd *cobra.Command, args []string) error {
	if asDataURI {
		fmt.Println(render.DataURI(args[0]))
		return nil
	}
	fmt.Println(render.Frame(args[0]))
	return nil
}

func runNote(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	kind, err := notes.ParseKind(args[0])
	if err != nil {
		return err
	}

	text := strings.Join(args[1:], " ")
	if fromClip {
		text, err = clip.Read()
		if err != nil {
			return fmt.Errorf("failed to read clipboard: %w", err)
		}
	}

	entry := notes.Entry{
		Kind:      kind,
		Text:      text,
		Project:   project,
		Company:   company,
		Attendees: attendees,
		When:      time.Now(),
	}

	st := notes.NewStore(cfg.NotesFile)
	if err := st.Append(entry); err != nil {
		return err
	}

	logger.Debug("note captured",
		zap.String("kind", string(kind)),
		zap.String("file", st.Path()),
		zap.Int("attendees", len(attendees)),
	)
	fmt.Printf("added %s entry to %s\n", kind, st.Path())
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	st := notes.NewStore(cfg.NotesFile)
	text, err := st.ReadAll()
	if err != nil {
		return err
	}
	if text == "" {
		fmt.Println("no notes yet")
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return err
	}
	out, err := r.Render(text)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = config.DefaultPath()
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := config.Save(path, config.DefaultConfig()); err != nil {
		return err
	}
	logger.Info("config written", zap.String("path", path))
	fmt.Printf("wrote %s\n", path)
	return nil
}
