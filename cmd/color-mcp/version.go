package main

import (
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/charmbracelet/lipgloss"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Display only the version string without metadata")
}

// versionCmd displays application version and build metadata.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version and build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(Version)
			return
		}

		versionInfo := struct {
			App       string
			Version   string
			BuildTime string
			GitCommit string
			OS        string
			Arch      string
		}{
			App:       "color-mcp",
			Version:   Version,
			BuildTime: strings.TrimSpace(BuildTime),
			GitCommit: GitCommit,
			OS:        runtime.GOOS,
			Arch:      runtime.GOARCH,
		}

		faint := lipgloss.NewStyle().Faint(true)
		bold := lipgloss.NewStyle().Bold(true)
		t, err := template.New("version").Funcs(map[string]any{
			"faint": func(s string) string { return faint.Render(s) },
			"bold":  func(s string) string { return bold.Render(s) },
		}).Parse(`{{ bold .App }}

  {{ faint "Version" }}      {{ bold .Version }}
  {{ faint "Build time" }}   {{ bold .BuildTime }}
  {{ faint "Git commit" }}   {{ bold .GitCommit }}
  {{ faint "Platform" }}     {{ bold .OS }}/{{ bold .Arch }}
`)
		handleErr(err)
		handleErr(t.Execute(cmd.OutOrStdout(), versionInfo))
	},
}
