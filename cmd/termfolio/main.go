// Package main provides the CLI entrypoint for termfolio.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/termfolio/internal/config"
	"github.com/verte-zerg/termfolio/internal/content"
	"github.com/verte-zerg/termfolio/internal/model"
	"github.com/verte-zerg/termfolio/internal/store"
	"github.com/verte-zerg/termfolio/internal/tui"
)

const (
	defaultFPS           = 60
	defaultTrailSegments = 6
	maxTrailSegments     = 10
	defaultRenderWidth   = 100
)

var (
	portfolioContent       string
	portfolioFPS           int
	portfolioTrail         bool
	portfolioTrailSegments int
	portfolioReducedMotion bool

	contentInitForce bool

	renderWidth int
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logErrf("failed to load .env: %v\n", err)
	}
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "termfolio",
		Short:         "Animated portfolio in the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPortfolioCmd,
	}

	addContentFlag(rootCmd)
	rootCmd.Flags().IntVar(&portfolioFPS, "fps", defaultFPS, "animation frames per second")
	rootCmd.Flags().BoolVar(&portfolioTrail, "trail", true, "draw the pointer trail")
	rootCmd.Flags().IntVar(&portfolioTrailSegments, "trail-segments", defaultTrailSegments, "number of trail segments")
	rootCmd.Flags().BoolVar(&portfolioReducedMotion, "reduced-motion", false, "skip tweens and disable the trail")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newContentCmd())
	rootCmd.AddCommand(newRenderCmd())

	return rootCmd
}

func addContentFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&portfolioContent, "content", "", "content YAML path (default: built-in content)")
}

func runPortfolioCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "content", &portfolioContent, fileCfg.Portfolio.Content)
	applyIntConfig(cmd, "fps", &portfolioFPS, fileCfg.Effects.FPS)
	applyBoolConfig(cmd, "trail", &portfolioTrail, fileCfg.Effects.Trail)
	applyIntConfig(cmd, "trail-segments", &portfolioTrailSegments, fileCfg.Effects.TrailSegments)
	applyBoolConfig(cmd, "reduced-motion", &portfolioReducedMotion, fileCfg.Effects.ReducedMotion)

	cfg := model.Config{
		ContentPath:   portfolioContent,
		FPS:           portfolioFPS,
		Trail:         portfolioTrail,
		TrailSegments: portfolioTrailSegments,
		ReducedMotion: portfolioReducedMotion,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	portfolio, err := loadPortfolio(cfg.ContentPath)
	if err != nil {
		return err
	}

	st, err := store.OpenMemory()
	if err != nil {
		return fmt.Errorf("failed to open inbox: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close inbox: %v\n", cerr)
		}
	}()

	m, err := tui.NewModel(cfg, portfolio, st, nil)
	if err != nil {
		return fmt.Errorf("failed to build portfolio: %w", err)
	}
	defer m.Close()

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// loadPortfolio reads content from path, the env override or the default
// location, falling back to the built-in content when no file exists.
func loadPortfolio(path string) (content.Portfolio, error) {
	explicit := path != ""
	if !explicit {
		path = config.DefaultContentPath()
		explicit = os.Getenv(config.ContentEnv) != ""
	}
	path = config.ExpandHome(path)
	p, err := content.Load(path)
	if err == nil {
		return p, nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return content.Default(), nil
	}
	return content.Portfolio{}, fmt.Errorf("failed to load content %s: %w", path, err)
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
	return openEditor(path)
}

func openEditor(path string) error {
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

func newContentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage portfolio content",
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the built-in content as YAML",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runContentInitCmd,
	}
	initCmd.Flags().BoolVar(&contentInitForce, "force", false, "overwrite an existing file")

	checkCmd := &cobra.Command{
		Use:   "check [path]",
		Short: "Validate a content file and print a summary",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runContentCheckCmd,
	}

	cmd.AddCommand(initCmd, checkCmd)
	return cmd
}

func contentPathArg(args []string) string {
	if len(args) > 0 {
		return config.ExpandHome(args[0])
	}
	return config.DefaultContentPath()
}

func runContentInitCmd(cmd *cobra.Command, args []string) error {
	path := contentPathArg(args)
	if !contentInitForce {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("content already exists: %s (use --force to overwrite)", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat content: %w", err)
		}
	}
	data, err := content.Marshal(content.Default())
	if err != nil {
		return err
	}
	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func runContentCheckCmd(cmd *cobra.Command, args []string) error {
	path := contentPathArg(args)
	p, err := content.Load(path)
	if err != nil {
		return fmt.Errorf("failed to load content %s: %w", path, err)
	}
	if err := content.RenderReport(cmd.OutOrStdout(), p); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the settled page to stdout",
		Args:  cobra.NoArgs,
		RunE:  runRenderCmd,
	}
	addContentFlag(cmd)
	cmd.Flags().IntVar(&renderWidth, "width", 0, "page width (default: terminal width)")
	return cmd
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "content", &portfolioContent, fileCfg.Portfolio.Content)
	portfolio, err := loadPortfolio(portfolioContent)
	if err != nil {
		return err
	}
	width := renderWidth
	if width <= 0 {
		width = terminalWidth()
	}
	out, err := tui.RenderStatic(portfolio, width)
	if err != nil {
		return fmt.Errorf("failed to render portfolio: %w", err)
	}
	if _, err := fmt.Fprint(cmd.OutOrStdout(), out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultRenderWidth
	}
	return width
}

func writeFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "content-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
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
	return fmt.Sprintf(`# termfolio configuration
# Uncomment a value to enable it. CLI flags override config values.

[portfolio]
# content = "~/.config/termfolio/content.yaml"  # Content YAML (default: built-in)

[effects]
# fps = %d                 # Animation frames per second
# trail = true             # Draw the pointer trail
# trail-segments = %d       # Number of trail segments (0-%d)
# reduced-motion = false   # Skip tweens and disable the trail
`,
		defaultFPS,
		defaultTrailSegments,
		maxTrailSegments,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.FPS <= 0 || cfg.FPS > 240 {
		return fmt.Errorf("--fps must be between 1 and 240")
	}
	if cfg.TrailSegments < 0 || cfg.TrailSegments > maxTrailSegments {
		return fmt.Errorf("--trail-segments must be between 0 and %d", maxTrailSegments)
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
