package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmeta/internal/logging"
	"github.com/vvka-141/dirmeta/internal/tui"
	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

var browseFlags struct {
	hidden bool
}

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Browse the filesystem interactively",
	Long: `Open an interactive browser starting at the given path, the configured
start directory, or the drive roots. Arrow keys move the selection, enter
descends into a folder, backspace goes to the parent, "g" prompts for a
path with tab completion, and "." toggles hidden entries.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runBrowse,
}

func init() {
	browseCmd.Flags().BoolVarP(&browseFlags.hidden, "hidden", "a", false, "Show hidden entries on start")
	rootCmd.AddCommand(browseCmd)
}

func resetBrowseFlags() {
	browseFlags.hidden = false
}

func runBrowse(cmd *cobra.Command, args []string) error {
	if !tui.IsInteractive() {
		return fmt.Errorf("browse requires an interactive terminal; use \"dirmeta ls\" in scripts")
	}

	cfg, err := loadBrowseConfig(cmd)
	if err != nil {
		return err
	}

	start, err := resolveStartPath(args, cfg)
	if err != nil {
		return err
	}

	hidden := browseFlags.hidden || cfg.ShowHidden
	collector := dirmeta.NewCollector(logging.NewConsoleLogger(getVerboseFlag(cmd)))
	return tui.Run(tui.NewBrowser(start, hidden, collector))
}
