package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ryvens/repdash/internal/application/board"
	"github.com/ryvens/repdash/internal/config"
	"github.com/ryvens/repdash/internal/core/expand"
	"github.com/ryvens/repdash/internal/presentation/render"
	"github.com/ryvens/repdash/internal/util"
	"github.com/spf13/cobra"
)

var (
	// Logging related
	debug bool

	// Config and input
	configPath   string
	snapshotPath string

	// View selection
	viewMode string
	search   string
	width    int
	noColor  bool

	rootCmd = &cobra.Command{
		Use:   "repdash [flags]",
		Short: "Cross-character reputation dashboard",
		Long: `repdash renders the reputation progress of every character on the account
from an exported game-client snapshot.

Two view modes are available:
  filtered   one aggregated "best" value per faction, split into
             Account-Wide and Character-Based sections
  char       the full per-character breakdown, active character first

Examples:
  repdash                                  # filtered view of the default snapshot
  repdash --mode char                      # per-character view
  repdash --search iron                    # only factions matching "iron"
  repdash --file /path/to/snapshot.json    # explicit snapshot location`,
		RunE: runRender,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"Config file path (YAML)")
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "file", "",
		"Account snapshot path (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")
	rootCmd.PersistentFlags().StringVarP(&viewMode, "mode", "m", "filtered",
		"View mode (filtered, char)")
	rootCmd.PersistentFlags().StringVarP(&search, "search", "s", "",
		"Case-insensitive faction name filter")
	rootCmd.PersistentFlags().IntVar(&width, "width", 0,
		"Rendering width (0 = terminal width)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable ANSI colors")
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	controller := board.NewRefreshController(cfg.SnapshotPath, cfg.MinRefreshInterval(), engineOptions(cfg))
	result, err := controller.ForceRefresh(search)
	if err != nil {
		return err
	}

	renderResult(os.Stdout, cfg, expand.NewState(), result)
	return nil
}

// setup loads config, applies flag overrides, and initializes logging.
func setup() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if snapshotPath != "" {
		cfg.SnapshotPath = snapshotPath
	}
	if noColor {
		cfg.Color = false
	}

	logLevel := cfg.LogLevel
	if debug {
		logLevel = "debug"
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, cfg.LogFile, debug)

	if viewMode != "filtered" && viewMode != "char" {
		return nil, fmt.Errorf("unknown view mode %q (want filtered or char)", viewMode)
	}

	return cfg, nil
}

func engineOptions(cfg *config.Config) *board.Options {
	return &board.Options{
		NestingExceptions: cfg.NestingExceptions,
		DefaultIcon:       cfg.DefaultIcon,
	}
}

func renderResult(out io.Writer, cfg *config.Config, state *expand.State, result *board.Result) {
	defaults := expand.Defaults{ActiveCharacterKey: result.ActiveCharacterKey}
	r := render.NewRenderer(state, defaults, width, cfg.Color)

	if viewMode == "char" {
		r.RenderPerCharacter(out, result.PerCharacter)
		return
	}

	// One-shot filtered output is not interactive, so collapsed sections
	// would hide everything; expand both roots up front.
	state.Set(expand.SectionKey(expand.ModeFiltered, "Account-Wide"), true)
	state.Set(expand.SectionKey(expand.ModeFiltered, "Character-Based"), true)
	r.RenderFiltered(out, result.Filtered)
}

func Execute() error {
	return rootCmd.Execute()
}
