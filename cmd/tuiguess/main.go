// Package main provides the CLI entrypoint for tuiguess.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/tuiguess/internal/config"
	"github.com/verte-zerg/tuiguess/internal/console"
	"github.com/verte-zerg/tuiguess/internal/generator"
	"github.com/verte-zerg/tuiguess/internal/model"
	"github.com/verte-zerg/tuiguess/internal/round"
	"github.com/verte-zerg/tuiguess/internal/session"
	"github.com/verte-zerg/tuiguess/internal/stats"
	"github.com/verte-zerg/tuiguess/internal/tui"
)

var defaultLevels = []int{3, 10, 100}

var (
	playName        string
	playLevel       int
	playLevels      []int
	playLeaderboard int
	playPlain       bool
)

func main() {
	setupLogging()
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if lvl, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		zerolog.SetGlobalLevel(lvl)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuiguess",
		Short:         "Number guessing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playName, "name", "", "player name (prompted when empty)")
	rootCmd.Flags().IntVar(&playLevel, "level", 0, "preselected level (must be one of --levels)")
	rootCmd.Flags().IntSliceVar(&playLevels, "levels", defaultLevels, "selectable levels")
	rootCmd.Flags().IntVar(&playLeaderboard, "leaderboard", stats.DefaultLeaderboardSize, "leaderboard size (0 keeps every score)")
	rootCmd.Flags().BoolVar(&playPlain, "plain", false, "use the line console instead of the full-screen UI")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLevelsCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

// loadPlayConfig merges config file values under the command-line flags.
func loadPlayConfig(cmd *cobra.Command) (model.Config, config.FileConfig, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "name", &playName, fileCfg.Game.Name)
	applyIntConfig(cmd, "level", &playLevel, fileCfg.Game.Level)
	applyIntSliceConfig(cmd, "levels", &playLevels, fileCfg.Game.Levels)
	applyIntConfig(cmd, "leaderboard", &playLeaderboard, fileCfg.Game.Leaderboard)

	cfg := model.Config{
		Player:      playName,
		Levels:      append([]int(nil), playLevels...),
		Level:       playLevel,
		Leaderboard: playLeaderboard,
		Feedback:    round.DefaultThresholds(),
		Hints:       round.DefaultHintThresholds(),
	}
	applyFloat(&cfg.Feedback.Hot, fileCfg.Feedback.Hot)
	applyFloat(&cfg.Feedback.Warm, fileCfg.Feedback.Warm)
	applyFloat(&cfg.Hints.VeryClose, fileCfg.Hint.VeryClose)
	applyFloat(&cfg.Hints.Close, fileCfg.Hint.Close)
	applyFloat(&cfg.Hints.SomewhatClose, fileCfg.Hint.SomewhatClose)

	if err := validateConfig(cfg); err != nil {
		return model.Config{}, config.FileConfig{}, err
	}
	return cfg, fileCfg, nil
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadPlayConfig(cmd)
	if err != nil {
		return err
	}

	gen := generator.New()
	sess := session.NewFactory(cfg, gen).New()

	if playPlain || !isTerminal() {
		c := console.New(sess, gen, cfg.Levels, cmd.InOrStdin(), cmd.OutOrStdout())
		if err := c.Run(cfg.Level); err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		return nil
	}

	program := tea.NewProgram(tui.NewModel(cfg, sess, gen), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
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

func newLevelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "levels",
		Short: "List configured levels",
		Args:  cobra.NoArgs,
		RunE:  runLevelsCmd,
	}
	cmd.Flags().IntSliceVar(&playLevels, "levels", defaultLevels, "selectable levels")
	return cmd
}

func runLevelsCmd(cmd *cobra.Command, _ []string) error {
	cfg, _, err := loadPlayConfig(cmd)
	if err != nil {
		return err
	}
	for _, level := range cfg.Levels {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d\t(guess 1-%d)\n", level, level); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = *value
}

func applyIntSliceConfig(cmd *cobra.Command, name string, target *[]int, value []int) {
	if value == nil {
		return
	}
	if flagChanged(cmd, name) {
		return
	}
	*target = append([]int(nil), value...)
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil || flagChanged(cmd, name) {
		return nil
	}
	d, err := time.ParseDuration(*value)
	if err != nil {
		return fmt.Errorf("invalid %s in config: %w", name, err)
	}
	*target = d
	return nil
}

func applyFloat(target, value *float64) {
	if value != nil {
		*target = *value
	}
}

// flagChanged reports whether the flag exists on cmd and was set explicitly.
func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}

func defaultConfigTemplate() string {
	feedback := round.DefaultThresholds()
	hints := round.DefaultHintThresholds()
	return fmt.Sprintf(`# tuiguess configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# name = "Player"          # Player name (prompted when unset)
# levels = [3, 10, 100]    # Selectable levels; each round guesses 1..level
# level = 10               # Preselected level
# leaderboard = %d          # Leaderboard size (0 keeps every score)

[feedback]
# hot = %.2f               # Hot when |guess-target| <= level*hot
# warm = %.2f              # Warm when |guess-target| <= level*warm

[hint]
# very-close = %.2f        # Hint cut points as |guess-target|/level
# close = %.2f
# somewhat-close = %.2f

[server]
# addr = %q             # Listen address for tuiguess serve
# session-ttl = %q         # Idle sessions are evicted after this long
# client-origin = ""       # Allowed CORS origin for a separately hosted page
`,
		stats.DefaultLeaderboardSize,
		feedback.Hot,
		feedback.Warm,
		hints.VeryClose,
		hints.Close,
		hints.SomewhatClose,
		defaultAddr,
		defaultSessionTTL.String(),
	)
}

func validateConfig(cfg model.Config) error {
	if len(cfg.Levels) == 0 {
		return fmt.Errorf("--levels must not be empty")
	}
	seen := make(map[int]struct{}, len(cfg.Levels))
	for _, level := range cfg.Levels {
		if level <= 0 {
			return fmt.Errorf("--levels must be > 0, got %d", level)
		}
		if _, dup := seen[level]; dup {
			return fmt.Errorf("--levels contains %d twice", level)
		}
		seen[level] = struct{}{}
	}
	if cfg.Level != 0 {
		if _, ok := seen[cfg.Level]; !ok {
			return fmt.Errorf("--level %d is not one of the configured levels", cfg.Level)
		}
	}
	if cfg.Leaderboard < 0 {
		return fmt.Errorf("--leaderboard must be >= 0")
	}
	if err := cfg.Feedback.Validate(); err != nil {
		return fmt.Errorf("invalid [feedback] config: %w", err)
	}
	if err := cfg.Hints.Validate(); err != nil {
		return fmt.Errorf("invalid [hint] config: %w", err)
	}
	return nil
}
