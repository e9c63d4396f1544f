package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmeta/internal/logging"
	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

var lsFlags struct {
	long        bool
	foldersOnly bool
	hidden      bool
}

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List the files and folders of a directory",
	Long: `List the immediate children of a directory, folders first, sorted
case-insensitively. With no path (and no configured start directory) the
mounted drive roots are listed instead.

--folders-only applies the extension heuristic: entries whose name has no
extension, or starts with a dot, are listed as folders without asking the
OS. A file named README qualifies; this matches the browsing heuristic,
not the actual entry type.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runLs,
}

func init() {
	lsCmd.Flags().BoolVarP(&lsFlags.long, "long", "l", false, "Show owner, modification time, and size columns")
	lsCmd.Flags().BoolVar(&lsFlags.foldersOnly, "folders-only", false, "List only folder-looking entries (naming heuristic)")
	lsCmd.Flags().BoolVarP(&lsFlags.hidden, "hidden", "a", false, "Include hidden entries")
	rootCmd.AddCommand(lsCmd)
}

func resetLsFlags() {
	lsFlags.long = false
	lsFlags.foldersOnly = false
	lsFlags.hidden = false
}

func runLs(cmd *cobra.Command, args []string) error {
	cfg, err := loadBrowseConfig(cmd)
	if err != nil {
		return err
	}

	long := lsFlags.long || cfg.Long
	foldersOnly := lsFlags.foldersOnly || cfg.FoldersOnly
	hidden := lsFlags.hidden || cfg.ShowHidden

	path, err := resolveStartPath(args, cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if foldersOnly {
		folders, err := dirmeta.Folders(path)
		if err != nil {
			return err
		}
		for _, folder := range folders {
			fmt.Fprintln(out, folder.String())
		}
		return nil
	}

	if path.String() == "" {
		return runDrives(cmd, nil)
	}

	files, folders, err := dirmeta.FilesFolders(path)
	if err != nil {
		return err
	}

	var collector *dirmeta.Collector
	if long {
		collector = dirmeta.NewCollector(logging.NewConsoleLogger(getVerboseFlag(cmd)))
	}

	printEntries(out, path, folders, hidden, collector)
	printEntries(out, path, files, hidden, collector)
	return nil
}

// printEntries writes one line per entry, with metadata columns when a
// collector is supplied.
func printEntries(out io.Writer, parent dirmeta.Path, entries []dirmeta.Path, hidden bool, collector *dirmeta.Collector) {
	for _, item := range entries {
		if !hidden && strings.HasPrefix(item.String(), ".") {
			continue
		}

		if collector == nil {
			fmt.Fprintln(out, item.String())
			continue
		}

		record := collector.FileMetadata(parent.Join(item))
		if record.Failed() {
			fmt.Fprintf(out, "%-58s %s\n", item.String(), record.Err)
			continue
		}

		size := record.FileSize
		if size == "" {
			size = "-"
		}
		fmt.Fprintf(out, "%-16s %-19s %12s %-8s %s\n",
			record.Owner,
			record.LastModified.Format("2006-01-02 15:04:05"),
			size,
			record.Item,
			item.String(),
		)
	}
}
