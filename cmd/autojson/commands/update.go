package commands

import (
	"github.com/spf13/cobra"
)

func updateCmd() *cobra.Command {
	var createMissing bool
	cmd := &cobra.Command{
		Use:   "update <path> <json|->",
		Short: "Shallow-merge a JSON object into a file and print the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			updates, err := decodeObjectArg(args[1])
			if err != nil {
				return err
			}
			merged, err := store.Update(args[0], updates, createMissing)
			if err != nil {
				return err
			}
			return printJSON(cmd, merged)
		},
	}
	cmd.Flags().BoolVar(&createMissing, "create", false, "create the file when it does not exist")
	return cmd
}
