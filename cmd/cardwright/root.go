package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/cardwright/cardwright/internal/logging"
	"github.com/cardwright/cardwright/pkg/adapters/azure"
	"github.com/cardwright/cardwright/pkg/ports"
)

var rootCmd = &cobra.Command{
	Use:   "cardwright",
	Short: "Cardwright builds Adaptive Card JSON from flat YAML definitions",
	Long: `Cardwright turns flat, indentation-friendly YAML definitions into
Adaptive Card JSON documents, optionally translating all text content
through the Azure Translator service.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")
}

// initConfig wires viper: flags < config file < environment.
// Environment variables use the CARDWRIGHT_ prefix, e.g.
// CARDWRIGHT_TRANSLATOR_KEY.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if dir, err := os.UserConfigDir(); err == nil {
		viper.AddConfigPath(dir + "/cardwright")
	}
	viper.SetEnvPrefix("cardwright")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; env and flags still apply.
	_ = viper.ReadInConfig()
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return logging.New(slog.LevelDebug)
	}
	return logging.New(slog.LevelInfo)
}

// newTranslator builds the Azure client from viper config. Returns nil when
// no key is configured; commands decide whether that is an error.
func newTranslator() (ports.Translator, error) {
	key := viper.GetString("translator.key")
	if key == "" {
		return nil, nil
	}

	opts := []azure.Option{}
	if region := viper.GetString("translator.region"); region != "" {
		opts = append(opts, azure.WithRegion(region))
	}
	if endpoint := viper.GetString("translator.endpoint"); endpoint != "" {
		opts = append(opts, azure.WithEndpoint(endpoint))
	}
	return azure.New(key, opts...)
}
