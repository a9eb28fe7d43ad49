package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-porter/internal/errors"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/catalog"
	"github.com/KirkDiggler/rpg-porter/internal/repositories/directory"
)

var defaultPartyFlag bool

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the world catalog",
}

var catalogLoadCmd = &cobra.Command{
	Use:   "load <file>",
	Short: "Replace catalog tables from a seed file",
	Long:  `Load a JSON object mapping table names to rows. Each table in the file replaces the stored table of the same name.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCatalogLoad,
}

var directoryCmd = &cobra.Command{
	Use:   "directory",
	Short: "Manage the world's users and parties",
}

var addUserCmd = &cobra.Command{
	Use:   "add-user <user-id>",
	Short: "Register a user",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddUser,
}

var addPartyCmd = &cobra.Command{
	Use:   "add-party <party-id>",
	Short: "Register a party",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddParty,
}

func init() {
	addPartyCmd.Flags().BoolVar(&defaultPartyFlag, "default", false, "make this the default party for imports")

	catalogCmd.AddCommand(catalogLoadCmd)
	directoryCmd.AddCommand(addUserCmd)
	directoryCmd.AddCommand(addPartyCmd)
}

func runCatalogLoad(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}
	tables, err := catalog.DecodeTables(data)
	if err != nil {
		return err
	}

	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, table := range tables {
		out, err := a.catalog.PutTable(cmd.Context(), catalog.PutTableInput{Table: table})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows\n", table.Name, out.Rows)
	}
	return nil
}

func runAddUser(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = a.directory.AddUser(cmd.Context(), directory.AddUserInput{ID: args[0]})
	return err
}

func runAddParty(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	_, err = a.directory.AddParty(cmd.Context(), directory.AddPartyInput{ID: args[0], Default: defaultPartyFlag})
	return err
}
