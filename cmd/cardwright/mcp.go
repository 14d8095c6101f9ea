package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardwright/cardwright/pkg/adapters/mcp"
)

// mcpCmd represents the mcp command
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Starts the card builder as an MCP Server over stdio.
This allows agent hosts to render card definitions and inspect the element
catalog as tools.`,
	Run: func(cmd *cobra.Command, args []string) {
		translator, err := newTranslator()
		if err != nil {
			fmt.Printf("Error configuring translator: %v\n", err)
			os.Exit(1)
		}

		opts := []mcp.Option{}
		if translator != nil {
			opts = append(opts, mcp.WithTranslator(translator))
		}
		srv := mcp.NewServer(opts...)

		// Ensure logs don't corrupt JSON-RPC on Stdout.
		log.SetOutput(os.Stderr)
		if err := srv.ServeStdio(); err != nil {
			fmt.Fprintf(os.Stderr, "MCP server execution failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
