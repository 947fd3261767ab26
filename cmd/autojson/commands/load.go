package commands

import (
	"github.com/spf13/cobra"
)

func loadCmd() *cobra.Command {
	var (
		recursive     bool
		createMissing bool
	)
	cmd := &cobra.Command{
		Use:   "load <dir>",
		Short: "Bulk-load every *.json file in a directory, keyed by file stem",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docs, err := store.LoadDir(args[0], recursive, createMissing)
			if err != nil {
				return err
			}
			return printJSON(cmd, docs)
		},
	}
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", true, "descend into subdirectories")
	cmd.Flags().BoolVar(&createMissing, "create", false, "create the directory when it does not exist")
	return cmd
}
