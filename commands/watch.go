package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ryvens/repdash/internal/application/board"
	"github.com/ryvens/repdash/internal/config"
	"github.com/ryvens/repdash/internal/data/watch"
	"github.com/ryvens/repdash/internal/presentation/display"
	"github.com/ryvens/repdash/internal/util"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render whenever the snapshot file changes",
	Long: `watch keeps the dashboard on screen and rebuilds it when the game client
rewrites the snapshot file. Rebuilds are throttled to the configured minimum
interval; every rebuild is a full pass over the snapshot.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	controller := board.NewRefreshController(cfg.SnapshotPath, cfg.MinRefreshInterval(), engineOptions(cfg))
	stateManager := board.NewStateManager()
	stateManager.SetSearch(search)

	result, err := controller.ForceRefresh(search)
	if err != nil {
		return err
	}
	stateManager.SetCurrent(result)

	term := display.NewTerminal(os.Stdout)
	term.EnterAlternateScreen()
	defer term.ExitAlternateScreen()
	redraw(term, cfg, stateManager)

	watcher, err := watch.NewFileWatcher(cfg.SnapshotPath)
	if err != nil {
		return fmt.Errorf("failed to watch snapshot: %w", err)
	}
	defer watcher.Close()

	util.LogInfof("Watching %s", cfg.SnapshotPath)

	// A dropped (throttled) event leaves stale data on screen, so retry on
	// a timer until a rebuild goes through.
	var retry <-chan time.Time

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	for {
		select {
		case <-sigCh:
			util.LogInfo("Shutting down watch mode")
			return nil

		case event := <-watcher.Events():
			util.LogDebugf("Snapshot changed: %s (%s)", event.Path, event.Operation)
			if !tryRefresh(term, controller, stateManager, cfg) {
				retry = time.After(cfg.MinRefreshInterval())
			}

		case <-retry:
			retry = nil
			if !tryRefresh(term, controller, stateManager, cfg) {
				retry = time.After(cfg.MinRefreshInterval())
			}
		}
	}
}

// tryRefresh runs a throttled rebuild and redraws on success. Returns false
// when the refresh was dropped by the interval gate.
func tryRefresh(term *display.Terminal, controller *board.RefreshController, sm *board.StateManager, cfg *config.Config) bool {
	result, ok, err := controller.Refresh(sm.Search())
	if err != nil {
		util.LogErrorf("Refresh failed: %v", err)
		return true // nothing to retry; the next file event will try again
	}
	if !ok {
		return false
	}
	sm.SetCurrent(result)
	redraw(term, cfg, sm)
	return true
}

func redraw(term *display.Terminal, cfg *config.Config, sm *board.StateManager) {
	result := sm.Current()
	if result == nil {
		return
	}

	term.Clear()
	renderResult(term.Out(), cfg, sm.ExpandState(), result)
	fmt.Fprintf(term.Out(), "\nsnapshot: %s · exported %s\n", cfg.SnapshotPath, util.FormatAge(result.ExportedAt))
}
