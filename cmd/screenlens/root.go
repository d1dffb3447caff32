package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pgold/screenlens"
)

var rootCmd = &cobra.Command{
	Use:   "screenlens",
	Short: "Classify a rendered terminal screen into a structured JSON record",
	Long: `screenlens reads a captured terminal screen from standard input,
classifies it (loading spinner, select list, text input, confirm dialog,
table, success or error banner, ...), and prints a typed JSON record
describing what is showing.

Classification is total: any input produces a result, falling back to
"unknown" for unrecognized screens. The command always exits 0 after a
successful read.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("reading screen text: %w", err)
		}

		result := screenlens.Classify(string(raw),
			screenlens.WithAppName(viper.GetString("app")))

		if err := screenlens.EncodeResult(cmd.OutOrStdout(), result); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String(
		"app", screenlens.DefaultAppName,
		"host application name used by the shell-echo and help-screen heuristics",
	)

	// SCREENLENS_APP works as a fallback when the flag is not given.
	viper.SetEnvPrefix("SCREENLENS")
	viper.AutomaticEnv()
	if err := viper.BindPFlag("app", rootCmd.PersistentFlags().Lookup("app")); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(versionCmd)
}
