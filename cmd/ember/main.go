// Command ember renders 2D scene files with a registered renderer
// backend, or serializes them to a scene description file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	_ "github.com/emberfx/ember/render/preview"
	_ "github.com/emberfx/ember/render/scenefile"
)

var rootCmd = &cobra.Command{
	Use:          "ember",
	Short:        "Render 2D scenes with pluggable renderer backends",
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
