package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "kng",
	Short: "Kangundi tourism booking-intake service",
	Long:  "Booking and inquiry intake API with a token-gated admin view for the Kangundi tourism operation.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
