package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createCmd() *cobra.Command {
	var (
		overwrite bool
		indent    int
		escape    bool
	)
	cmd := &cobra.Command{
		Use:   "create <path> [json|-]",
		Short: "Create a JSON file, empty object by default",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var doc any
			if len(args) == 2 {
				var err error
				if doc, err = decodeArg(args[1]); err != nil {
					return err
				}
			}
			indent, escape := resolveFormat(cmd, indent, escape)
			created, err := store.Create(args[0], doc, overwrite, formatOptions(indent, escape)...)
			if err != nil {
				return err
			}
			if !created {
				fmt.Fprintf(cmd.OutOrStdout(), "exists, not overwritten: %s\n", args[0])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created: %s\n", args[0])
			return nil
		},
	}
	addFormatFlags(cmd, &indent, &escape)
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace the file when it already exists")
	return cmd
}
