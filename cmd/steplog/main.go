// Package main provides the CLI entrypoint for steplog.
package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/steplog/internal/config"
	"github.com/verte-zerg/steplog/internal/console"
	"github.com/verte-zerg/steplog/internal/model"
	"github.com/verte-zerg/steplog/internal/stats"
	"github.com/verte-zerg/steplog/internal/tracker"
	"github.com/verte-zerg/steplog/internal/tui"
)

var (
	trackMaxSessions int
	trackReportPath  string
	trackHighEnergy  float64
	trackPlain       bool

	showHighEnergy float64
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "steplog",
		Short:         "Step tracker and idea log",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runTrackCmd,
	}

	rootCmd.Flags().IntVar(&trackMaxSessions, "max-sessions", tracker.DefaultMaxSessions, "maximum sessions kept in the log")
	rootCmd.Flags().StringVar(&trackReportPath, "report", stats.DefaultReportPath, "report file written by Save Report")
	rootCmd.Flags().Float64Var(&trackHighEnergy, "high-energy", tracker.DefaultHighEnergy, "steps per minute that count as a high-energy walk (0 disables)")
	rootCmd.Flags().BoolVar(&trackPlain, "plain", false, "use the line-based menu even on a terminal")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newShowCmd())

	return rootCmd
}

func runTrackCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "max-sessions", &trackMaxSessions, fileCfg.Tracker.MaxSessions)
	applyFloatConfig(cmd, "high-energy", &trackHighEnergy, fileCfg.Tracker.HighEnergy)
	applyBoolConfig(cmd, "plain", &trackPlain, fileCfg.Tracker.Plain)
	applyStringConfig(cmd, "report", &trackReportPath, fileCfg.Report.Path)

	cfg := model.Config{
		MaxSessions: trackMaxSessions,
		ReportPath:  trackReportPath,
		HighEnergy:  trackHighEnergy,
		Plain:       trackPlain,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	log := tracker.New(cfg.MaxSessions)
	if cfg.Plain || !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return console.New(cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr(), log, cfg).Run()
	}

	program := tea.NewProgram(tui.NewModel(cfg, log), tea.WithAltScreen())
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
	if err := ensureConfigFile(path); err != nil {
		return err
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

func ensureConfigFile(path string) error {
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
	return nil
}

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [report]",
		Short: "Print a saved report with its summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runShowCmd,
	}
	cmd.Flags().Float64Var(&showHighEnergy, "high-energy", tracker.DefaultHighEnergy, "steps per minute that count as a high-energy walk (0 disables)")
	return cmd
}

func runShowCmd(cmd *cobra.Command, args []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "high-energy", &showHighEnergy, fileCfg.Tracker.HighEnergy)

	path := stats.DefaultReportPath
	if fileCfg.Report.Path != nil {
		path = *fileCfg.Report.Path
	}
	if len(args) == 1 {
		path = args[0]
	}
	sessions, err := stats.LoadReport(path)
	if err != nil {
		return fmt.Errorf("failed to read report %s: %w", path, err)
	}
	return printReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), sessions, showHighEnergy)
}

func printReport(w, errOut io.Writer, sessions []model.WalkSession, highEnergy float64) error {
	log := tracker.New(len(sessions))
	for _, s := range sessions {
		if !log.Add(s) {
			fprintErrf(errOut, "skipping invalid session: %d steps in %s minutes\n", s.Steps, stats.FormatMinutes(s.Minutes))
		}
	}
	if err := stats.RenderSessions(w, log.Sessions()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderSummary(w, log, highEnergy); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
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
	return fmt.Sprintf(`# steplog configuration
# Uncomment a value to enable it. CLI flags override config values.

[tracker]
# max-sessions = %d        # Maximum sessions kept in the log
# high-energy = %.1f      # Steps per minute that count as a high-energy walk
# plain = false           # Always use the line-based menu

[report]
# path = %q   # Report file written by Save Report
`,
		tracker.DefaultMaxSessions,
		tracker.DefaultHighEnergy,
		stats.DefaultReportPath,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.MaxSessions <= 0 {
		return fmt.Errorf("--max-sessions must be > 0")
	}
	if strings.TrimSpace(cfg.ReportPath) == "" {
		return fmt.Errorf("--report must not be empty")
	}
	if cfg.HighEnergy < 0 {
		return fmt.Errorf("--high-energy must be >= 0")
	}
	return nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func fprintErrf(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
