package commands

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biguint/biguint/libs/log"
)

var (
	logger  = log.NewLogger(os.Stderr)
	verbose bool
)

const (
	// LogFormatPlain defines a colorized, human-readable log format.
	LogFormatPlain = "plain"
	// LogFormatJSON defines a JSON log format.
	LogFormatJSON = "json"
)

func registerFlagsRootCmd(cmd *cobra.Command) {
	cmd.PersistentFlags().Int("width", 32, "operand width in bytes")
	cmd.PersistentFlags().Bool("checked", false, "fail on overflow or underflow instead of wrapping")
	cmd.PersistentFlags().String("log_format", LogFormatPlain, "log output format (plain or json)")
}

func init() {
	registerFlagsRootCmd(RootCmd)
	viper.SetEnvPrefix("BIGUINT")
	viper.AutomaticEnv()
}

// RootCmd is the root command for the biguint calculator.
var RootCmd = &cobra.Command{
	Use:   "biguint",
	Short: "Fixed-width unsigned big-integer arithmetic over hex operands",
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if cmd.Name() == VersionCmd.Name() {
			return nil
		}
		if err := viper.BindPFlags(cmd.Flags()); err != nil {
			return err
		}
		if viper.GetString("log_format") == LogFormatJSON {
			logger = log.NewJSONLogger(os.Stderr)
		}
		return nil
	},
}
