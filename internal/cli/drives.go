package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/dirmeta/pkg/dirmeta"
)

var drivesCmd = &cobra.Command{
	Use:   "drives",
	Short: "List mounted drive roots",
	Long: `List the mount point of every partition the OS reports,
including virtual and pseudo mounts. One mount point per line.`,
	Args: cobra.NoArgs,
	RunE: runDrives,
}

func init() {
	rootCmd.AddCommand(drivesCmd)
}

func runDrives(cmd *cobra.Command, args []string) error {
	drives, err := dirmeta.Drives()
	if err != nil {
		return fmt.Errorf("enumerating partitions: %w", err)
	}

	out := cmd.OutOrStdout()
	for _, drive := range drives {
		fmt.Fprintln(out, drive.String())
	}
	return nil
}
