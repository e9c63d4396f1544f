package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		printVersionInfo()
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// resolveVersionInfo returns the ldflags values when set, falling back to
// module build info for go-install builds.
func resolveVersionInfo() (string, string, string) {
	if version != "dev" {
		return version, commit, date
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return version, commit, date
	}

	resolvedVersion := version
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		resolvedVersion = info.Main.Version
	}

	resolvedCommit, resolvedDate := commit, date
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			resolvedCommit = setting.Value
		case "vcs.time":
			resolvedDate = setting.Value
		}
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}

// printVersionInfo prints version information.
// Version string goes to stdout for pipeline consumption.
// Decorative content goes to stderr.
func printVersionInfo() {
	resolvedVersion, resolvedCommit, resolvedDate := resolveVersionInfo()

	fmt.Fprintln(os.Stderr, asciiLogo)
	fmt.Fprintln(os.Stderr)
	// Machine-parseable version to stdout
	fmt.Printf("dirmeta %s (%s, %s) %s/%s\n", resolvedVersion, resolvedCommit, resolvedDate, runtime.GOOS, runtime.GOARCH)
	fmt.Fprintln(os.Stderr, "Directory and metadata browser")
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Repository: https://github.com/vvka-141/dirmeta")
}
