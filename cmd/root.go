package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Flags
	flagConfig    string
	flagLogLevel  string
	flagNoHistory bool
)

var rootCmd = &cobra.Command{
	Use:   "hash-omikuji",
	Short: "Deterministic SHA-256 fortune telling",
	Long: `hash-omikuji draws a New Year "omikuji" (fortune slip) from the SHA-256
hash of a (year, user) pair. The same pair always draws the same fortune:
a lucky number, day, element, direction and more decoded from the hash
bits, plus a 16-cell fingerprint of the digest itself.

By tradition the draw is only allowed on January 1st.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.hash-omikuji/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagNoHistory, "no-history", false, "Do not record this draw (env: OMIKUJI_NO_HISTORY)")
}

// Execute runs the root command.
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("hash-omikuji %s\n", version))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
