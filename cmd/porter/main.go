// Package main is the entry point for the porter CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	debugFlag     bool
	verboseFlag   bool
	gameFlag      string
	exportDirFlag string
)

var rootCmd = &cobra.Command{
	Use:   "porter",
	Short: "Move characters between worlds",
	Long: `Porter exports a world's hero as a self-contained JSON document and imports
such documents into another world, matching references against the local catalog.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "debug logging and stable export filenames")
	rootCmd.PersistentFlags().BoolVar(&verboseFlag, "verbose", false, "trace every resolution step")
	rootCmd.PersistentFlags().StringVar(&gameFlag, "game", "", "game ID (overrides PORTER_GAME_ID)")
	rootCmd.PersistentFlags().StringVar(&exportDirFlag, "export-dir", "", "export root (overrides PORTER_EXPORT_DIR)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(directoryCmd)
}
