package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/ironsheep/color-tools-mcp/colorconv"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

// inspectCmd prints every representation of a color beside a swatch.
var inspectCmd = &cobra.Command{
	Use:   "inspect <color>",
	Short: "Show a color in every supported format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := colorconv.Parse(args[0])
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), renderInspect(c))
		return err
	},
}

func renderInspect(c colorconv.Color) string {
	label := lipgloss.NewStyle().Faint(true).Width(26)
	value := lipgloss.NewStyle().Bold(true)

	rows := lo.Map(colorconv.Formats(), func(f colorconv.Format, _ int) string {
		return label.Render(f.String()) + value.Render(c.Format(f))
	})

	swatch := lipgloss.NewStyle().
		Background(c.Lipgloss()).
		Width(10).
		Height(len(rows)).
		Render("")

	return lipgloss.JoinHorizontal(lipgloss.Top, swatch, "  ", lipgloss.JoinVertical(lipgloss.Left, rows...))
}
