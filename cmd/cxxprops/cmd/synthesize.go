package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/kr/pretty"
	"github.com/spf13/cobra"

	"github.com/cxxprops/cxxprops/internal/classio"
	cxerrors "github.com/cxxprops/cxxprops/internal/errors"
	"github.com/cxxprops/cxxprops/internal/properties"
)

var (
	synthesizeOutputFile   string
	synthesizeHintFile     string
	synthesizeOutputFormat string
)

var synthesizeCmd = &cobra.Command{
	Use:   "synthesize [class.json]",
	Short: "Synthesize the property model of a parsed class description",
	Long: `synthesize reads a class description document (the parsed
signatures of one C++ class's member functions) and writes the
synthesized property model as JSON.

Examples:
  cxxprops synthesize class.json
  cxxprops synthesize class.json -o properties.json
  cxxprops synthesize class.json --hint-file hints.json`,
	Args: cobra.ExactArgs(1),
	RunE: runSynthesize,
}

func init() {
	rootCmd.AddCommand(synthesizeCmd)

	synthesizeCmd.Flags().StringVarP(&synthesizeOutputFile, "output", "o", "", "output file (default: stdout)")
	synthesizeCmd.Flags().StringVar(&synthesizeHintFile, "hint-file", "", "externally attached element-count hints to apply before synthesis")
	synthesizeCmd.Flags().StringVar(&synthesizeOutputFormat, "format", "", `output format: "json" (default) or "pretty"`)
}

func runSynthesize(_ *cobra.Command, args []string) error {
	filename := args[0]

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	hintFile := synthesizeHintFile
	if hintFile == "" {
		hintFile = cfg.HintFile
	}
	if hintFile != "" {
		data, err = applyHintFile(data, hintFile)
		if err != nil {
			return fmt.Errorf("applying hint file %s: %w", hintFile, err)
		}
	}

	class, errs := classio.DecodeClass(data, filename)
	if len(errs) > 0 {
		fmt.Fprint(os.Stderr, cxerrors.FormatErrors(errs, true))
		fmt.Fprintln(os.Stderr)
		return fmt.Errorf("decoding failed with %d error(s)", len(errs))
	}

	if verbose {
		for i := range class.Functions {
			attrs, ok := properties.Extract(&class.Functions[i])
			fmt.Fprintf(os.Stderr, "%s: eligible=%v %# v\n", class.Functions[i].Name, ok, pretty.Formatter(attrs))
		}
	}

	result := properties.BuildProperties(class)

	if verbose {
		for i := range result.Properties {
			fmt.Fprintf(os.Stderr, "property %# v\n", pretty.Formatter(result.Properties[i]))
		}
	}

	format := synthesizeOutputFormat
	if format == "" {
		format = cfg.OutputFormat
	}
	if format == "" {
		format = "json"
	}

	doc := classio.EncodeClassProperties(class.Name, result)
	var out []byte
	switch format {
	case "json":
		out, err = classio.MarshalIndent(doc)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
	case "pretty":
		out = []byte(pretty.Sprint(doc))
	default:
		return fmt.Errorf("unknown output format %q (want \"json\" or \"pretty\")", format)
	}

	if synthesizeOutputFile == "" {
		fmt.Println(string(out))
		return nil
	}
	if err := os.WriteFile(synthesizeOutputFile, out, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", synthesizeOutputFile, err)
	}
	fmt.Printf("Synthesized %s -> %s\n", filename, synthesizeOutputFile)
	return nil
}

// applyHintFile reads a side-file of {functionName, argIndex, count} hint
// entries and patches them into the class document before decoding.
func applyHintFile(classData []byte, hintFile string) ([]byte, error) {
	hintData, err := os.ReadFile(hintFile)
	if err != nil {
		return nil, err
	}

	var hints []struct {
		Function string `json:"function"`
		ArgIndex int    `json:"argIndex"`
		Count    int    `json:"count"`
	}
	if err := json.Unmarshal(hintData, &hints); err != nil {
		return nil, fmt.Errorf("parsing hint file: %w", err)
	}

	out := classData
	for _, h := range hints {
		out, err = classio.PatchHint(out, h.Function, h.ArgIndex, h.Count)
		if err != nil {
			return nil, fmt.Errorf("hint for %s: %w", h.Function, err)
		}
	}
	return out, nil
}
