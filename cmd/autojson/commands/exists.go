package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNotValidJSON = errors.New("missing or not valid JSON")

func existsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "Report whether a file exists and holds valid JSON",
		Long: "Prints true or false and exits non-zero on false, so the command\n" +
			"can gate shell pipelines.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if store.Exists(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), "true")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "false")
			cmd.SilenceErrors = true
			return errNotValidJSON
		},
	}
}
