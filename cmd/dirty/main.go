package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔╦╗╦╦═╗╔╦╗╦ ╦
   ║║║╠╦╝ ║ ╚╦╝
  ╚╩╝╩╩╚═ ╩  ╩
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dirty",
		Short: "Lazy HTML and XML generation for Go",
		Long: `Dirty builds HTML and XML documents as lazy fragment streams.

Documents are plain Go values that serialize on demand, so a page
starts reaching the client before it is fully built. Features:

  • Element trees from ordinary function calls
  • Lazy rendering with range-over-func iterators
  • Streaming HTTP handlers with flush control
  • WebSocket fragment feeds
  • Static publishing to S3`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	return root
}
