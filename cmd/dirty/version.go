package main

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func versionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print version, commit, and build information for the dirty CLI.`,
		Run: func(cmd *cobra.Command, args []string) {
			if short {
				fmt.Println(version)
				return
			}

			rev, at := buildStamp()
			fmt.Printf("dirty %s\n", version)
			fmt.Printf("  commit: %s\n", rev)
			fmt.Printf("  built:  %s\n", at)
			fmt.Printf("  go:     %s (%s/%s)\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
		},
	}

	cmd.Flags().BoolVarP(&short, "short", "s", false, "Print only the version number")

	return cmd
}

// buildStamp resolves the commit and build date, preferring values injected
// at link time and falling back to the binary's embedded VCS build info.
func buildStamp() (rev, at string) {
	rev, at = commit, date
	if rev != "none" && at != "unknown" {
		return rev, at
	}
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return rev, at
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if rev == "none" {
				rev = s.Value
			}
		case "vcs.time":
			if at == "unknown" {
				at = s.Value
			}
		}
	}
	return rev, at
}
