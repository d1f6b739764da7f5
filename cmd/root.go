package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/timvw/gh-ghq-cd/internal/app"
	"github.com/timvw/gh-ghq-cd/internal/command"
	"github.com/timvw/gh-ghq-cd/internal/config"
	"github.com/timvw/gh-ghq-cd/internal/ghq"
	"github.com/timvw/gh-ghq-cd/internal/logging"
	"github.com/timvw/gh-ghq-cd/internal/model"
	"github.com/timvw/gh-ghq-cd/internal/mux"
	telem "github.com/timvw/gh-ghq-cd/internal/otel"
	"github.com/timvw/gh-ghq-cd/internal/selection"
	"github.com/timvw/gh-ghq-cd/internal/shell"
)

var log = logging.NewLogger("cmd")

var (
	// Global flags.
	flagMux    string
	flagFinder string
	flagTheme  string

	// Layout flags.
	flagNewWindow           bool
	flagDeprecatedNewWindow bool
	flagNewPane             int
	flagVertical            bool
	flagHorizontal          bool
	flagCommand             string
)

var rootCmd = &cobra.Command{
	Use:   "gh-ghq-cd",
	Short: "cd into ghq managed repositories",
	Long: `gh-ghq-cd lists the repositories managed by ghq, lets you fuzzy-select
one and then either starts your shell inside it, or opens it in a new
tmux/zellij window or pane.

Window and pane options only take effect inside a multiplexer session;
elsewhere the repository always opens in the current terminal.`,
	Example: `  gh ghq-cd              # cd into the selected repository
  gh ghq-cd -w           # open it in a new window
  gh ghq-cd -w -p 2 -H   # new window split into two side-by-side panes
  gh ghq-cd -p -c 'git status'`,
	Args: cobra.NoArgs,
	RunE: runRoot,
}

// Execute runs the root command.
func Execute() {
	args, deprecated := normalizeArgs(os.Args[1:])
	if deprecated {
		warnf(os.Stderr, "-nw is deprecated, use -w or --new-window instead")
	}
	rootCmd.SetArgs(args)
	rootCmd.Version = Version

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMux, "mux", "", "terminal multiplexer: auto, tmux, zellij, none (default: from config, auto)")
	rootCmd.PersistentFlags().StringVar(&flagFinder, "finder", "", "selector: builtin, fzf (default: from config, builtin)")
	rootCmd.PersistentFlags().StringVar(&flagTheme, "theme", "", "color theme: dark, light (default: from config, dark)")

	f := rootCmd.Flags()
	f.BoolVarP(&flagNewWindow, "new-window", "w", false, "open in a new window (only inside tmux/zellij)")
	f.BoolVarP(&flagDeprecatedNewWindow, "deprecated-new-window", "n", false, "deprecated, use -w")
	_ = f.MarkHidden("deprecated-new-window")
	f.IntVarP(&flagNewPane, "new-pane", "p", 0, "open in a new pane (1 = single pane, 2 = split into 2 panes)")
	f.Lookup("new-pane").NoOptDefVal = "1"
	f.BoolVarP(&flagVertical, "vertical", "V", false, "use vertical split (default, only with -p)")
	f.BoolVarP(&flagHorizontal, "horizontal", "H", false, "use horizontal split (only with -p)")
	rootCmd.MarkFlagsMutuallyExclusive("vertical", "horizontal")
	f.StringVarP(&flagCommand, "command", "c", "", "command to run in the new pane/window")
}

func runRoot(cmd *cobra.Command, _ []string) error {
	mode, err := resolveMode(layoutFlags{
		newWindow:  flagNewWindow || flagDeprecatedNewWindow,
		newPane:    flagNewPane,
		paneSet:    cmd.Flags().Changed("new-pane"),
		vertical:   flagVertical,
		horizontal: flagHorizontal,
	})
	if err != nil {
		return err
	}
	if flagDeprecatedNewWindow {
		warnf(cmd.ErrOrStderr(), "-n is deprecated, use -w or --new-window instead")
	}
	cmd.SilenceUsage = true

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	tel := initTelemetry(ctx, cfg)
	defer tel.Shutdown(context.Background())

	runner := command.WithTelemetry(command.System{}, tel)
	metrics := metricsOf(tel)

	m, err := mux.FromName(cfg.Mux, os.Getenv, runner, metrics)
	if err != nil {
		return err
	}
	finder, err := newFinder(cfg, runner, metrics)
	if err != nil {
		return err
	}

	required := []string{cfg.GhqPath}
	if cfg.Finder == "fzf" {
		required = append(required, cfg.FzfPath)
	}

	a := &app.App{
		Env:     app.SystemEnvironment{},
		Checker: command.System{},
		Selector: &selection.Selector{
			Lister:  ghq.New(runner, cfg.GhqPath),
			Finder:  finder,
			Metrics: metrics,
		},
		Mux:        m,
		Shell:      shell.System{},
		ShellPath:  shell.Resolve(cfg.Shell, os.Getenv),
		InSession:  mux.InSession(m),
		Required:   required,
		BeforeExec: func() { tel.Shutdown(context.Background()) },
		Warnf: func(format string, args ...any) {
			warnf(cmd.ErrOrStderr(), format, args...)
		},
	}
	log.WithField("mux", m.Name()).Debugf("mode %s", mode)
	return a.Run(ctx, app.Options{Mode: mode, Command: flagCommand})
}

// layoutFlags are the raw layout flag values.
type layoutFlags struct {
	newWindow  bool
	newPane    int
	paneSet    bool
	vertical   bool
	horizontal bool
}

// resolveMode validates the layout flags and maps them to a Mode.
func resolveMode(f layoutFlags) (model.Mode, error) {
	if f.paneSet && (f.newPane < 1 || f.newPane > model.MaxPanes) {
		return model.Mode{}, fmt.Errorf("invalid value %d for -p/--new-pane: must be 1 or %d", f.newPane, model.MaxPanes)
	}
	if (f.vertical || f.horizontal) && !f.paneSet {
		return model.Mode{}, fmt.Errorf("%w: -V/--vertical and -H/--horizontal require -p/--new-pane", app.ErrInvalidFlagCombination)
	}
	if f.vertical && f.horizontal {
		return model.Mode{}, fmt.Errorf("%w: -V/--vertical and -H/--horizontal are mutually exclusive", app.ErrInvalidFlagCombination)
	}
	newPane := 0
	if f.paneSet {
		newPane = f.newPane
	}
	return model.ModeFromFlags(f.newWindow, newPane, f.horizontal), nil
}

// loadConfig reads the config and applies the global flags on top.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if flagMux != "" {
		cfg.Mux = flagMux
	}
	if flagFinder != "" {
		cfg.Finder = flagFinder
	}
	if flagTheme != "" {
		cfg.Theme = flagTheme
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.SetLevel(cfg.LogLevel)
	if cfg.ConfigFile != "" {
		log.Debugf("config: loaded %s", cfg.ConfigFile)
	}
	return cfg, nil
}

// initTelemetry starts OTEL export when an endpoint is configured. Failures
// only disable telemetry.
func initTelemetry(ctx context.Context, cfg *config.Config) *telem.Telemetry {
	// Wire build version into OTEL service metadata
	telem.Version = Version

	tel, err := telem.Init(ctx, telem.OTELConfig{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		warnf(os.Stderr, "otel init failed: %v", err)
		return nil
	}
	if tel.Enabled() {
		log.Debugf("otel: exporting to %s", cfg.OTELEndpoint)
	}
	return tel
}

func metricsOf(tel *telem.Telemetry) *telem.Metrics {
	if tel == nil {
		return nil
	}
	return tel.Metrics
}

// newFinder returns the configured selection UI.
func newFinder(cfg *config.Config, runner command.Runner, metrics *telem.Metrics) (selection.Finder, error) {
	theme := selection.ThemeByName(cfg.Theme)
	switch cfg.Finder {
	case "fzf":
		self, err := os.Executable()
		if err != nil {
			log.WithError(err).Debug("cannot resolve own executable, fzf preview disabled")
			self = ""
		}
		return &selection.FzfFinder{Runner: runner, Binary: cfg.FzfPath, Self: self}, nil
	case "builtin":
		return &selection.TUIFinder{
			Previewer: selection.NewPreviewer(theme.Name, metrics),
			Theme:     theme,
		}, nil
	default:
		return nil, fmt.Errorf("unknown finder %q (supported: builtin, fzf)", cfg.Finder)
	}
}
