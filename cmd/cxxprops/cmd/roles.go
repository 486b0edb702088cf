package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cxxprops/cxxprops/internal/classio"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List every role a method can be classified into",
	Long:  `roles prints the full set of method roles this tool can assign, in natural sort order.`,
	RunE:  runRoles,
}

func init() {
	rootCmd.AddCommand(rolesCmd)
}

func runRoles(_ *cobra.Command, _ []string) error {
	names := classio.AllRoleNames()
	classio.SortRoleNames(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
