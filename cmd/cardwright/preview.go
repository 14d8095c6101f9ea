package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/cardwright/cardwright/pkg/domain"
	"github.com/cardwright/cardwright/pkg/loader"
)

var previewCmd = &cobra.Command{
	Use:   "preview <definition.yaml>",
	Short: "Render a card's text content in the terminal",
	Long: `Builds the card and renders a markdown approximation of its text
content with terminal styling. Useful for proofreading card copy without a
card host.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: cardwright preview <definition.yaml>")
			os.Exit(1)
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading definition: %v\n", err)
			os.Exit(1)
		}

		def, err := loader.Parse(data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing definition: %v\n", err)
			os.Exit(1)
		}

		card, err := def.NewCard()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building card: %v\n", err)
			os.Exit(1)
		}

		r, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing renderer: %v\n", err)
			os.Exit(1)
		}

		out, err := r.Render(markdownSummary(card.Root()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering preview: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(out)
	},
}

// markdownSummary flattens the card's visible text into markdown, one line
// per text-bearing element.
func markdownSummary(root *domain.Node) string {
	var b strings.Builder
	writeSummary(&b, root)
	return b.String()
}

func writeSummary(b *strings.Builder, n *domain.Node) {
	switch n.Kind() {
	case "TextBlock", "TextRun":
		if text, ok := n.Attr("text"); ok {
			if weight, _ := n.Attr("weight"); weight == "Bolder" {
				fmt.Fprintf(b, "**%v**\n\n", text)
			} else {
				fmt.Fprintf(b, "%v\n\n", text)
			}
		}
	case "Fact":
		title, _ := n.Attr("title")
		value, _ := n.Attr("value")
		fmt.Fprintf(b, "- **%v**: %v\n", title, value)
	case "Image":
		if url, ok := n.Attr("url"); ok {
			fmt.Fprintf(b, "![image](%v)\n\n", url)
		}
	default:
		if n.IsActionFamily() {
			if title, ok := n.Attr("title"); ok {
				fmt.Fprintf(b, "`[%v]`\n\n", title)
			}
		}
	}
	for _, child := range n.Items() {
		writeSummary(b, child)
	}
	for _, child := range n.Actions() {
		writeSummary(b, child)
	}
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
