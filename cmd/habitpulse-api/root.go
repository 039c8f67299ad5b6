package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "habitpulse-api",
	Short:        "HabitPulse API server",
	Long:         `A REST API server and offline tooling for the HabitPulse habit and HRV dashboard.`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default ./config.yaml)")

	rootCmd.AddCommand(serveCmd, migrateCmd, seedCmd, exportCmd, importHRVCmd, statsCmd)
}
