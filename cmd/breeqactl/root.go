package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "breeqactl",
	Short: "Breeqa server control CLI",
	Long:  `breeqactl manages the Breeqa server: migrations, configuration and the server process itself.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
