// Package commands defines the autojson CLI.
//
// # Commands
//
//   - read     Parse a JSON file and print its content
//   - write    Serialize a JSON document to a file
//   - update   Shallow-merge an object into a file
//   - create   Create a file, empty object by default
//   - delete   Remove a file
//   - exists   Report whether a file holds valid JSON
//   - load     Bulk-load a directory of *.json files
//
// # Implementation
//
// The root command resolves formatting defaults before any subcommand runs:
// an optional autojson.yaml (working directory or ~/.config/autojson) sets
// indent and escape-non-ascii, and per-command flags override it. Inline JSON
// arguments accept "-" to read the document from stdin. Documents go to
// stdout; logs go to stderr.
package commands
