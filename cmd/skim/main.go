// Package main provides the CLI entrypoint for skim.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/skim/internal/config"
	"github.com/verte-zerg/skim/internal/model"
	"github.com/verte-zerg/skim/internal/playback"
	"github.com/verte-zerg/skim/internal/source"
	"github.com/verte-zerg/skim/internal/stats"
	"github.com/verte-zerg/skim/internal/statsui"
	"github.com/verte-zerg/skim/internal/store"
	"github.com/verte-zerg/skim/internal/tui"
)

const (
	defaultWPM         = 250
	defaultStatsWindow = 10
)

var (
	readerWPM   int
	readerFocus bool

	statsSince  string
	statsLast   int
	statsWindow int
	statsPlain  bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "skim [file]",
		Short:         "Terminal RSVP speed reader",
		Long:          "skim shows one word at a time at a configurable pace. Without a file it reads the clipboard, then standard input.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runReaderCmd,
	}

	rootCmd.Flags().IntVar(&readerWPM, "wpm", defaultWPM, "initial words per minute")
	rootCmd.Flags().BoolVar(&readerFocus, "focus", false, "highlight the optimal recognition point")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

func runReaderCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "wpm", &readerWPM, fileCfg.Reader.WPM)
	applyBoolConfig(cmd, "focus", &readerFocus, fileCfg.Reader.Focus)

	if readerWPM < playback.MinRate {
		return fmt.Errorf("--wpm must be at least %d", playback.MinRate)
	}
	cfg := model.Config{WPM: readerWPM, Focus: readerFocus}

	path := ""
	if len(args) == 1 {
		path = args[0]
	}
	text, err := source.Load(path)
	if err != nil {
		return err
	}
	words := source.Tokenize(text.Raw)
	if len(words) == 0 {
		logErrln("No text to display. Provide a file, text in the clipboard, or pipe text into the program.")
		return nil
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		// Reading works without history; warn and continue.
		logErrf("failed to open session db: %v\n", err)
		st = nil
	} else {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v\n", cerr)
			}
		}()
	}

	reader := tui.NewModel(cfg, st, words, text.Label)
	program := tea.NewProgram(reader, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show reading history",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N sessions")
	cmd.Flags().IntVar(&statsWindow, "window", defaultStatsWindow, "moving average window")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a plain report instead of the dashboard")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.StatsConfig{
		Since:  sinceTime,
		Last:   statsLast,
		Window: statsWindow,
		Plain:  statsPlain,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	if cfg.Plain {
		sessions, err := st.ListSessions(cmd.Context(), cfg)
		if err != nil {
			return fmt.Errorf("failed to list sessions: %w", err)
		}
		out := cmd.OutOrStdout()
		if err := stats.RenderSummary(out, sessions); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if err := stats.RenderTrend(out, sessions, cfg.Window); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if err := stats.RenderSessionTable(out, sessions); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	dashboard := statsui.NewModel(st, cfg)
	program := tea.NewProgram(dashboard, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# skim configuration
# Uncomment a value to enable it. CLI flags override config values.

[reader]
# wpm = %d      # Initial words per minute
# focus = false  # Highlight the optimal recognition point
`, defaultWPM)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
