package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cxxprops/cxxprops/internal/classio"
)

var listCmd = &cobra.Command{
	Use:   "list [properties.json]",
	Short: "List a synthesized document's properties in natural order",
	Long: `list reads the JSON a "cxxprops synthesize" run produced and
prints each property's name and public roles, sorted naturally so
indexed names like Point2/Point10 list in numeric rather than
lexicographic order.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, args []string) error {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var doc classio.ClassPropertiesDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parsing %s: %w", filename, err)
	}

	classio.SortPropertiesNatural(doc.Properties)
	for _, p := range doc.Properties {
		fmt.Printf("%s: %s\n", p.Name, strings.Join(p.PublicMethods, ", "))
	}
	return nil
}
