package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cardwright/cardwright/pkg/builder"
	"github.com/cardwright/cardwright/pkg/loader"
)

var buildCmd = &cobra.Command{
	Use:   "build <definition.yaml>",
	Short: "Build a card definition into Adaptive Card JSON",
	Long: `Reads a flat YAML card definition, replays it through the builder,
and writes the serialized card to stdout.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		logger := newLogger(cmd)

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

		opts := []builder.Option{builder.WithLogger(logger)}
		lang, _ := cmd.Flags().GetString("translate-to")
		if lang != "" {
			translator, err := newTranslator()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error configuring translator: %v\n", err)
				os.Exit(1)
			}
			if translator == nil {
				fmt.Fprintln(os.Stderr, "Error: --translate-to requires a translator key (CARDWRIGHT_TRANSLATOR_KEY)")
				os.Exit(1)
			}
			opts = append(opts, builder.WithTranslator(translator))
		}

		card, err := def.NewCard(opts...)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error building card: %v\n", err)
			os.Exit(1)
		}

		if lang != "" {
			if err := card.Translate(context.Background(), lang); err != nil {
				fmt.Fprintf(os.Stderr, "Error translating card: %v\n", err)
				os.Exit(1)
			}
		}

		compact, _ := cmd.Flags().GetBool("compact")
		var out []byte
		if compact {
			out, err = card.JSON()
		} else {
			out, err = card.IndentJSON()
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error serializing card: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().String("translate-to", "", "Target language code for text translation")
	buildCmd.Flags().Bool("compact", false, "Emit compact JSON instead of indented")
}
