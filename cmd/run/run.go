// Package run wires the command line to the pipeline. Everything in
// here is presentation: it calls the pipeline's two entry points and
// renders the returned envelopes.
package run

import (
	"os"

	"github.com/spf13/cobra"
)

var confPath string

var rootCmd = &cobra.Command{
	Use:   "stratum",
	Short: "Layered encapsulation pipeline",
	Long: "stratum drives a text message through a fixed stack of protocol-layer\n" +
		"transforms down to a simulated wire representation and back, verifying\n" +
		"integrity along the way.",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&confPath, "conf", "c", "", "path to YAML configuration (defaults apply when omitted)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
