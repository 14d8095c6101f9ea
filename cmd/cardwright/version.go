package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cardwright/cardwright"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of cardwright",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("cardwright version %s\n", strings.TrimSpace(cardwright.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
