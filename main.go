package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kamilpajak/codecompanion/internal/assistant"
	"github.com/kamilpajak/codecompanion/internal/config"
	"github.com/kamilpajak/codecompanion/internal/latency"
	"github.com/kamilpajak/codecompanion/internal/logger"
	"github.com/kamilpajak/codecompanion/internal/notes"
	"github.com/kamilpajak/codecompanion/internal/roadmap"
	"github.com/kamilpajak/codecompanion/internal/server"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	format     string
	useDelay   bool
	noColor    bool
	listTopics bool
	servePort  string
)

var rootCmd = &cobra.Command{
	Use:   "codecompanion",
	Short: "Study assistants for notes, code and learning roadmaps",
	Long: `Summarizes study notes, explains source code and suggests learning
roadmaps. Everything runs locally on keyword and pattern heuristics.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

var notesCmd = &cobra.Command{
	Use:   "notes [file|-]",
	Short: "Summarize notes from a file or stdin",
	Long: `Summarize notes from a file or stdin.

Text files are read as is. PDFs and images produce placeholder text.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNotes,
}

var codeCmd = &cobra.Command{
	Use:   "code [file|-]",
	Short: "Explain source code from a file or stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCode,
}

var roadmapCmd = &cobra.Command{
	Use:   "roadmap <goal...>",
	Short: "Generate a learning roadmap for a goal",
	Example: `  codecompanion roadmap I want to learn Python scripting
  codecompanion roadmap --list`,
	RunE: runRoadmap,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API locally with password login",
	Args:  cobra.NoArgs,
	RunE:  serve,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "codecompanion %s\n", version)
		fmt.Fprintf(out, "  commit: %s\n", commit)
		fmt.Fprintf(out, "  built:  %s\n", date)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")
	rootCmd.PersistentFlags().BoolVar(&useDelay, "delay", false, "Simulate assistant thinking time")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	roadmapCmd.Flags().BoolVar(&listTopics, "list", false, "List the known roadmap topics")
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "Port to listen on")

	rootCmd.AddCommand(notesCmd, codeCmd, roadmapCmd, serveCmd, versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if rootCmd.ExecuteContext(ctx) != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	if noColor {
		color.NoColor = true
	}
	switch format {
	case "text", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown format %q (use text, json or yaml)", format)
}

func newAssistant() *assistant.Service {
	delay := latency.None
	if useDelay {
		delay = latency.Default
	}
	return assistant.New(delay, logger.Nop())
}

type spinnerEmitter struct {
	s *spinner.Spinner
}

func (e *spinnerEmitter) Emit(ev assistant.ProgressEvent) {
	if ev.Type == "info" {
		e.s.Suffix = " " + ev.Message
		e.s.Start()
	}
}

// progress picks how to show an in-flight call on w: a spinner on a
// terminal, plain lines when delayed output is piped, nothing otherwise.
// The returned func clears the indicator.
func progress(w io.Writer) (assistant.ProgressEmitter, func()) {
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond, spinner.WithWriter(w))
		return &spinnerEmitter{s: s}, s.Stop
	}
	if useDelay {
		return &assistant.TextEmitter{W: w}, func() {}
	}
	return assistant.Discard, func() {}
}

func inputPath(args []string) string {
	if len(args) == 0 {
		return "-"
	}
	return args[0]
}

func readSource(stdin io.Reader, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}

// readNotes reads stdin as text. Files go through notes.ExtractText with
// the type sniffed from their contents.
func readNotes(stdin io.Reader, path string) (string, error) {
	if path == "-" {
		return readSource(stdin, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return notes.ExtractText(notes.File{Name: filepath.Base(path), Size: info.Size(), Body: f})
}

func runNotes(cmd *cobra.Command, args []string) error {
	text, err := readNotes(cmd.InOrStdin(), inputPath(args))
	if err != nil {
		return err
	}

	em, stop := progress(os.Stderr)
	result, err := newAssistant().AnalyzeNotes(cmd.Context(), text, em)
	stop()
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), result, func(w io.Writer) { printNotes(w, result) })
}

func runCode(cmd *cobra.Command, args []string) error {
	code, err := readSource(cmd.InOrStdin(), inputPath(args))
	if err != nil {
		return err
	}

	em, stop := progress(os.Stderr)
	result, err := newAssistant().AnalyzeCode(cmd.Context(), code, em)
	stop()
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), result, func(w io.Writer) { printCode(w, result) })
}

func runRoadmap(cmd *cobra.Command, args []string) error {
	if listTopics {
		topics := roadmap.Topics()
		return render(cmd.OutOrStdout(), map[string][]string{"topics": topics}, func(w io.Writer) {
			printTopics(w, topics)
		})
	}
	if len(args) == 0 {
		return errors.New("a learning goal is required")
	}

	em, stop := progress(os.Stderr)
	result, err := newAssistant().GenerateRoadmap(cmd.Context(), strings.Join(args, " "), em)
	stop()
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), result, func(w io.Writer) { printRoadmap(w, result) })
}

// render writes v in the selected format. text prints the human layout.
func render(w io.Writer, v any, text func(io.Writer)) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

func serve(cmd *cobra.Command, args []string) error {
	defaults := map[string]string{"LOG_MODE": "dev", "AUTH_MODE": config.AuthMock, "PORT": servePort}
	cfg, err := config.LoadWithDefaults(defaults)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	log, err := logger.New(logger.Options{Mode: cfg.LogMode, File: cfg.LogFile})
	if err != nil {
		return err
	}
	defer log.Sync()

	srv, err := server.New(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	defer srv.Close()

	fmt.Fprintf(os.Stderr, "API: http://localhost:%s\n", cfg.Port)
	return srv.ListenAndServe(cmd.Context())
}
