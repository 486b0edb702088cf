package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cxxprops/cxxprops/internal/classio"
)

var hintOutputFile string

var hintCmd = &cobra.Command{
	Use:   "hint [class.json] [function] [argIndex] [count]",
	Short: "Patch an externally-attached element-count hint into a class document",
	Long: `hint sets the function-level hasHint/hintSize fields of one
function in a class description, the way an upstream annotation pass
would before the document ever reaches "cxxprops synthesize". argIndex
must name an existing argument of the function, or be -1 for the return
value.

Example:
  cxxprops hint class.json GetName -1 64`,
	Args: cobra.ExactArgs(4),
	RunE: runHint,
}

func init() {
	rootCmd.AddCommand(hintCmd)
	hintCmd.Flags().StringVarP(&hintOutputFile, "output", "o", "", "output file (default: overwrite input)")
}

func runHint(_ *cobra.Command, args []string) error {
	filename, function := args[0], args[1]

	argIndex, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("invalid argIndex %q: %w", args[2], err)
	}
	count, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Errorf("invalid count %q: %w", args[3], err)
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	patched, err := classio.PatchHint(data, function, argIndex, count)
	if err != nil {
		return fmt.Errorf("patching hint: %w", err)
	}

	outFile := hintOutputFile
	if outFile == "" {
		outFile = filename
	}
	if err := os.WriteFile(outFile, patched, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", outFile, err)
	}
	fmt.Printf("Hinted %s.%s[%d] = %d -> %s\n", filename, function, argIndex, count, outFile)
	return nil
}
