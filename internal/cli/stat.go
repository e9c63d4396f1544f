package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmeta/internal/logging"
	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

var statCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Show the metadata of a single file or folder",
	Long: `Show the owner, last modification time, formatted size, and item kind
of one filesystem entry. Folders report no size and the item kind "Folder".`,
	Args: cobra.ExactArgs(1),
	RunE: runStat,
}

func init() {
	rootCmd.AddCommand(statCmd)
}

func runStat(cmd *cobra.Command, args []string) error {
	collector := dirmeta.NewCollector(logging.NewConsoleLogger(getVerboseFlag(cmd)))
	record := collector.FileMetadata(dirmeta.New(args[0]))
	if record.Failed() {
		if strings.HasPrefix(record.Err, "File not found") {
			return fmt.Errorf("%w: %s", dirmeta.ErrNotFound, record.Err)
		}
		return fmt.Errorf("stat %q: %s", args[0], record.Err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Path:          %s\n", record.Path.String())
	fmt.Fprintf(out, "Owner:         %s\n", record.Owner)
	fmt.Fprintf(out, "Last Modified: %s\n", record.LastModified.Format("2006-01-02 15:04:05"))
	if record.FileSize != "" {
		fmt.Fprintf(out, "File Size:     %s\n", record.FileSize)
	}
	item := record.Item
	if item == "" {
		item = "(no extension)"
	}
	fmt.Fprintf(out, "Item:          %s\n", item)
	return nil
}
