package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cxxprops/cxxprops/internal/config"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	cfg     config.Config
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "cxxprops",
	Short: "Synthesize C++ property models from parsed class descriptions",
	Long: `cxxprops infers a C++ class's logical properties from its parsed
member-function signatures: it groups Set/Get/Add/Remove-shaped methods
into properties and classifies the role each method plays, without
ever looking at the original C++ source.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(config.DefaultPath)
		if err != nil {
			return fmt.Errorf("loading %s: %w", config.DefaultPath, err)
		}
		cfg = loaded
		if !cmd.Flags().Changed("verbose") && cfg.Verbose {
			verbose = true
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "pretty-print each classification step as it happens")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
