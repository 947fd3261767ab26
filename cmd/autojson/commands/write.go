package commands

import (
	"github.com/spf13/cobra"

	"autojson"
)

func writeCmd() *cobra.Command {
	var (
		indent int
		escape bool
		noDirs bool
	)
	cmd := &cobra.Command{
		Use:   "write <path> <json|->",
		Short: "Serialize a JSON document to a file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := decodeArg(args[1])
			if err != nil {
				return err
			}
			indent, escape := resolveFormat(cmd, indent, escape)
			opts := formatOptions(indent, escape)
			if noDirs {
				opts = append(opts, autojson.WithoutDirCreation())
			}
			return store.Write(args[0], doc, opts...)
		},
	}
	addFormatFlags(cmd, &indent, &escape)
	cmd.Flags().BoolVar(&noDirs, "no-mkdir", false, "do not create missing parent directories")
	return cmd
}
