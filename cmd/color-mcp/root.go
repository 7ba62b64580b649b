package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ironsheep/color-tools-mcp/internal/config"
	"github.com/ironsheep/color-tools-mcp/internal/logging"
	"github.com/ironsheep/color-tools-mcp/internal/server"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// fs is where the config file is read from and swatches are written to.
var fs = afero.NewOsFs()

// settings is loaded before any command runs.
var settings *viper.Viper

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().String("log-level", "", "Log level (trace, debug, info, warn, error)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("log-level", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"trace", "debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	}))
}

// rootCmd runs the MCP server on stdin/stdout.
var rootCmd = &cobra.Command{
	Use:   "color-mcp",
	Short: "MCP server for color parsing and conversion",
	Long: `color-mcp - MCP server for color parsing and conversion

Without a subcommand the server communicates via MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).

Settings are read from color-mcp.toml in the working directory or
$HOME/.config/color-mcp, and from COLOR_MCP_* environment variables
(e.g. COLOR_MCP_LOG_LEVEL=debug).`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return nil
		}

		cfg, err := config.FromViper(settings)
		if err != nil {
			return err
		}

		// stdout carries the protocol
		logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
		if err != nil {
			return err
		}
		logger.WithFields(logrus.Fields{
			"version": Version,
			"built":   BuildTime,
			"commit":  GitCommit,
		}).Debug("Color MCP server starting")

		server.Version = Version
		srv := server.New(
			server.WithLogger(logger),
			server.WithFs(fs),
			server.WithSwatchSize(cfg.SwatchWidth, cfg.SwatchHeight),
			server.WithSwatchRoot(cfg.SwatchRoot),
			server.WithConvertFormat(cfg.ConvertFormat),
		)
		if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

// loadSettings reads the config and binds the flags of the running command
// over it.
func loadSettings(cmd *cobra.Command, args []string) error {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", config.FileName))
	}

	v, err := config.New(fs, paths...)
	if err != nil {
		return err
	}

	if f := cmd.Flags().Lookup("log-level"); f != nil {
		lo.Must0(v.BindPFlag(config.KeyLogLevel, f))
	}
	if f := cmd.Flags().Lookup("to"); f != nil {
		lo.Must0(v.BindPFlag(config.KeyConvertFormat, f))
	}

	settings = v
	return nil
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	handleErr(rootCmd.Execute())
}

func handleErr(err error) {
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "color-mcp: %s\n", strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
