package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"autojson"
	"autojson/internal/logger"
)

// formatting holds the write defaults resolved from the optional config file.
type formatting struct {
	Indent         int  `mapstructure:"indent"`
	EscapeNonASCII bool `mapstructure:"escape-non-ascii"`
}

var (
	verbose bool
	format  = formatting{Indent: 4}
	store   *autojson.Store
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "autojson",
		Short:        "Read, write and merge JSON files",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger.Initialize(level)

			viper.SetConfigName("autojson")
			viper.SetConfigType("yaml")
			viper.AddConfigPath(".")
			if home, err := os.UserHomeDir(); err == nil {
				viper.AddConfigPath(filepath.Join(home, ".config", "autojson"))
			}
			viper.SetDefault("indent", 4)
			viper.SetDefault("escape-non-ascii", false)

			// The config file is optional; flags cover everything it sets.
			if err := viper.ReadInConfig(); err != nil {
				if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
					return err
				}
				slog.Debug("no config file found, using defaults")
			} else {
				slog.With("config_file", viper.ConfigFileUsed()).Debug("config file loaded")
			}
			if err := viper.Unmarshal(&format); err != nil {
				return err
			}

			store = autojson.New()
			return nil
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(readCmd(), writeCmd(), updateCmd(), createCmd(), deleteCmd(), existsCmd(), loadCmd())
	return root
}

// addFormatFlags registers the per-command formatting flags shared by the
// writing commands.
func addFormatFlags(cmd *cobra.Command, indent *int, escape *bool) {
	cmd.Flags().IntVar(indent, "indent", 4, "indentation width in spaces")
	cmd.Flags().BoolVar(escape, "escape-non-ascii", false, "escape non-ASCII characters to \\uXXXX")
}

// resolveFormat applies config-file defaults to formatting flags the user did
// not set explicitly.
func resolveFormat(cmd *cobra.Command, indent int, escape bool) (int, bool) {
	if !cmd.Flags().Changed("indent") {
		indent = format.Indent
	}
	if !cmd.Flags().Changed("escape-non-ascii") {
		escape = format.EscapeNonASCII
	}
	return indent, escape
}

func formatOptions(indent int, escape bool) []autojson.WriteOption {
	opts := []autojson.WriteOption{autojson.WithIndent(indent)}
	if escape {
		opts = append(opts, autojson.WithEscapeNonASCII())
	}
	return opts
}

// decodeArg parses an inline JSON argument; "-" reads the document from stdin.
func decodeArg(arg string) (any, error) {
	raw := []byte(arg)
	if arg == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		raw = b
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid JSON argument: %w", err)
	}
	return doc, nil
}

// decodeObjectArg is decodeArg restricted to JSON objects.
func decodeObjectArg(arg string) (map[string]any, error) {
	doc, err := decodeArg(arg)
	if err != nil {
		return nil, err
	}
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", doc)
	}
	return obj, nil
}

// printJSON writes doc to the command's stdout using the resolved formatting,
// including the escape-non-ascii setting, so printed documents match what the
// writing commands would put on disk.
func printJSON(cmd *cobra.Command, doc any) error {
	b, err := autojson.Marshal(doc, formatOptions(format.Indent, format.EscapeNonASCII)...)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}
