package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/biguint/biguint"
)

// AddCmd sums two hex operands of the configured width.
var AddCmd = &cobra.Command{
	Use:   "add <hex> <hex>",
	Short: "Add two fixed-width values",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		a, b, err := operands(args)
		if err != nil {
			return err
		}
		var sum biguint.Uint
		if viper.GetBool("checked") {
			sum, err = a.AddChecked(b)
			if err != nil {
				return err
			}
		} else {
			sum = a.Add(b)
		}
		logger.Debug("add", "a", a, "b", b, "sum", sum)
		fmt.Println(sum.Hex())
		return nil
	},
}

// SubCmd subtracts the second hex operand from the first.
var SubCmd = &cobra.Command{
	Use:   "sub <hex> <hex>",
	Short: "Subtract two fixed-width values",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		a, b, err := operands(args)
		if err != nil {
			return err
		}
		var diff biguint.Uint
		if viper.GetBool("checked") {
			diff, err = a.SubChecked(b)
			if err != nil {
				return err
			}
		} else {
			diff = a.Sub(b)
		}
		logger.Debug("sub", "a", a, "b", b, "difference", diff)
		fmt.Println(diff.Hex())
		return nil
	},
}

// MulCmd multiplies two hex operands.
var MulCmd = &cobra.Command{
	Use:   "mul <hex> <hex>",
	Short: "Multiply two fixed-width values",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		a, b, err := operands(args)
		if err != nil {
			return err
		}
		var product biguint.Uint
		if viper.GetBool("checked") {
			product, err = a.MulChecked(b)
			if err != nil {
				return err
			}
		} else {
			product = a.Mul(b)
		}
		logger.Debug("mul", "a", a, "b", b, "product", product)
		fmt.Println(product.Hex())
		return nil
	},
}

// DivCmd divides the first hex operand by the second.
var DivCmd = &cobra.Command{
	Use:   "div <hex> <hex>",
	Short: "Divide two fixed-width values (integer quotient)",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		a, b, err := operands(args)
		if err != nil {
			return err
		}
		quotient, err := a.Div(b)
		if err != nil {
			return err
		}
		logger.Debug("div", "a", a, "b", b, "quotient", quotient)
		fmt.Println(quotient.Hex())
		return nil
	},
}

// ModCmd reduces the first hex operand modulo the second.
var ModCmd = &cobra.Command{
	Use:   "mod <hex> <hex>",
	Short: "Reduce one fixed-width value modulo another",
	Args:  cobra.ExactArgs(2),
	RunE: func(_ *cobra.Command, args []string) error {
		a, b, err := operands(args)
		if err != nil {
			return err
		}
		remainder, err := a.Mod(b)
		if err != nil {
			return err
		}
		logger.Debug("mod", "a", a, "b", b, "remainder", remainder)
		fmt.Println(remainder.Hex())
		return nil
	},
}

// operands decodes the two hex arguments at the configured width.
func operands(args []string) (biguint.Uint, biguint.Uint, error) {
	width := viper.GetInt("width")
	if width <= 0 {
		return biguint.Uint{}, biguint.Uint{}, fmt.Errorf("invalid width %d", width)
	}
	a, err := biguint.FromHex(width, args[0])
	if err != nil {
		return biguint.Uint{}, biguint.Uint{}, fmt.Errorf("operand %q: %w", args[0], err)
	}
	b, err := biguint.FromHex(width, args[1])
	if err != nil {
		return biguint.Uint{}, biguint.Uint{}, fmt.Errorf("operand %q: %w", args[1], err)
	}
	return a, b, nil
}
