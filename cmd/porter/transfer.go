package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-porter/internal/orchestrators/transfer"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/token"
)

var exportCmd = &cobra.Command{
	Use:   "export [token-id]",
	Short: "Export a hero to a document",
	Long:  `Export the given token, or the world's selected token, to <export-dir>/<game>/<name>_<timestamp>.json.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

var importCmd = &cobra.Command{
	Use:   "import <path>",
	Short: "Import a hero from a document",
	Long:  `Import a document written by export, or a legacy bare token document, as a new token.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

var selectCmd = &cobra.Command{
	Use:   "select <token-id>",
	Short: "Mark a token as the world's selection",
	Args:  cobra.ExactArgs(1),
	RunE:  runSelect,
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	input := &transfer.ExportInput{}
	if len(args) == 1 {
		input.TokenID = args[0]
	}

	_, err = a.transfer.Export(cmd.Context(), input)
	return err
}

func runImport(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = a.transfer.Import(cmd.Context(), &transfer.ImportInput{Path: args[0]})
	return err
}

func runSelect(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = a.tokens.Select(cmd.Context(), token.SelectInput{ID: args[0]})
	return err
}
