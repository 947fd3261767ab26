package commands

import (
	"github.com/spf13/cobra"
)

func readCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "read <path>",
		Short: "Parse a JSON file and print its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := store.Read(args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, doc)
		},
	}
}
