package main

import (
	"fmt"
	"strings"

	"github.com/ironsheep/color-tools-mcp/colorconv"
	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringP("to", "t", "", "Output format: "+strings.Join(colorconv.FormatNames(), ", "))
	lo.Must0(convertCmd.RegisterFlagCompletionFunc("to", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return colorconv.FormatNames(), cobra.ShellCompDirectiveNoFileComp
	}))
}

// convertCmd renders one color in one format.
var convertCmd = &cobra.Command{
	Use:     "convert <color>",
	Short:   "Convert a color to another format",
	Example: "  color-mcp convert '#bcfff5' --to rgba\n  color-mcp convert bc/ff/f5/80 --to hex8",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromViper(settings)
		if err != nil {
			return err
		}

		c, err := colorconv.Parse(args[0])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), c.Format(cfg.ConvertFormat))
		return err
	},
}
