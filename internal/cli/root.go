package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `     _ _                    _
  __| (_)_ __ _ __ ___  ___| |_ __ _
 / _` + "`" + ` | | '__| '_ ` + "`" + ` _ \/ _ \ __/ _` + "`" + ` |
| (_| | | |  | | | | |  __/ || (_| |
 \__,_|_|_|  |_| |_| |_|\___|\__\__,_|`

var rootCmd = &cobra.Command{
	Use:   "dirmeta",
	Short: "Cross-platform directory and metadata browser",
	Long: asciiLogo + `

dirmeta browses directories, lists mounted drives, and reports per-entry
metadata: owner, last modified time, human-readable size, and item type.
The same core backs the scriptable drives/ls/stat commands and the
interactive browser.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  20 - Path not found
  21 - Path is not a directory
  22 - Type mismatch`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for dirmeta")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "", "Directory containing dirmeta.yaml")
	rootCmd.PersistentFlags().String("env-file", "", "Env file loaded before configuration is read")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
