package version

import (
	"fmt"

	"github.com/spf13/cobra"
)

var version = "v0.1.0"

var Cmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("transcriber %s\n", version)
	},
}
