package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cxxprops/cxxprops/internal/classio"
)

var queryCmd = &cobra.Command{
	Use:   "query [document.json] [path]",
	Short: "Run a gjson path query against a class or property document",
	Long: `query runs a gjson path expression against any JSON document this
tool produces or consumes (a class description or a synthesized
property model) and prints the raw matched value.

Example:
  cxxprops query properties.json "properties.#(name==\"Width\").type.base"`,
	Args: cobra.ExactArgs(2),
	RunE: runQuery,
}

func init() {
	rootCmd.AddCommand(queryCmd)
}

func runQuery(_ *cobra.Command, args []string) error {
	filename, path := args[0], args[1]

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	result, err := classio.Query(data, path)
	if err != nil {
		return fmt.Errorf("query %q: %w", path, err)
	}

	fmt.Println(result)
	return nil
}
