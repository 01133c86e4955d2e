package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.2.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the current version of the collateral CLI.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("collateral version %s\n", version)
		fmt.Println("Collateral requirement engine for fixed-maturity portfolios")
		fmt.Println("https://github.com/rustyeddy/collateral")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
