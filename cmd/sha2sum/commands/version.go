package commands

import (
	"fmt"
	"runtime"

	"github.com/nemuizzz/sha2sum/pkg/version"
	"github.com/spf13/cobra"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show sha2sum version information",
	Long:  `Display version information for sha2sum, including build date and git commit.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "sha2sum v%s\n", version.Version)
		fmt.Fprintf(out, "Build Date: %s\n", version.BuildDate)
		fmt.Fprintf(out, "Git Commit: %s\n", version.GitCommit)
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}
