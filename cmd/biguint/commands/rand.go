package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biguint/biguint/libs/rand"
)

// RandCmd emits a random value of the configured width. Not for
// cryptographic use; see libs/rand.
var RandCmd = &cobra.Command{
	Use:   "rand",
	Short: "Generate a random value of the configured width",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		width := viper.GetInt("width")
		if width <= 0 {
			return fmt.Errorf("invalid width %d", width)
		}
		fmt.Println(rand.Uint(width).Hex())
		return nil
	},
}
