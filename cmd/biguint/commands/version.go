package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/biguint/biguint/version"
)

// VersionCmd ...
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version info",
	Run: func(_ *cobra.Command, _ []string) {
		ver := version.SemVer
		if version.GitCommitHash != "" {
			ver += "+" + version.GitCommitHash
		}

		if verbose {
			values, err := json.MarshalIndent(struct {
				Biguint     string `json:"biguint"`
				HexProtocol uint64 `json:"hex_protocol"`
			}{
				Biguint:     ver,
				HexProtocol: version.HexProtocol,
			}, "", "  ")
			if err != nil {
				panic(fmt.Sprintf("failed to marshal version info: %v", err))
			}
			fmt.Println(string(values))
		} else {
			fmt.Println(ver)
		}
	},
}

func init() {
	VersionCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Show protocol and library versions")
}
