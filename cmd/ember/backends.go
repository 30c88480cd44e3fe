package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emberfx/ember/render"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List registered renderer backends",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range render.Types() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(backendsCmd)
}
