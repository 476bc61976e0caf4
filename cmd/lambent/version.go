// Version command for the lambent CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/lambent/pkg/lambent"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lambent version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("lambent", lambent.Version)
	},
}
