// Package cli implements the canocli operator commands. All state lives
// server-side except verification, which runs locally against the fetched
// proof and root digest.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	endpoint   string
	secureConn bool
)

var rootCmd = &cobra.Command{
	Use:   "canocli",
	Short: "Canocli is a command-line client for the canopy commitment server",
}

// Init initiates commands
func Init() error {
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "localhost:10000", "canopy server endpoint")
	rootCmd.PersistentFlags().BoolVar(&secureConn, "secure", false, "connect with TLS")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(digestCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(proofCmd)
	rootCmd.AddCommand(verifyCmd)

	return nil
}

// Execute executes command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
