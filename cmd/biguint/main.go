package main

import (
	"os"

	cmd "github.com/biguint/biguint/cmd/biguint/commands"
)

func main() {
	rootCmd := cmd.RootCmd
	rootCmd.AddCommand(
		cmd.AddCmd,
		cmd.SubCmd,
		cmd.MulCmd,
		cmd.DivCmd,
		cmd.ModCmd,
		cmd.RandCmd,
		cmd.VersionCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
