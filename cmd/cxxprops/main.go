// Command cxxprops synthesizes C++ property models from parsed class
// descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/cxxprops/cxxprops/cmd/cxxprops/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
