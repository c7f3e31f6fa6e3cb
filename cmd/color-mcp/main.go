package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/color-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	root := &cobra.Command{
		Use:   "color-mcp",
		Short: "MCP server for color conversion and analysis",
		Long: `color-mcp - MCP server exposing color conversion, contrast and naming tools.

This server communicates via the MCP protocol over stdin/stdout.
Configure it in your MCP client (e.g., Claude Desktop).

Environment variables:
  COLOR_MCP_LOG_LEVEL=debug    Enable debug logging`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger()
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck // stderr sync failure is uninteresting

			log.Debug("starting server",
				zap.String("version", Version),
				zap.String("build_time", BuildTime),
				zap.String("commit", GitCommit))

			return server.New(log).Run()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("color-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds a zap logger writing to stderr; stdout belongs to the MCP
// protocol. COLOR_MCP_LOG_LEVEL=debug enables debug output.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	if os.Getenv("COLOR_MCP_LOG_LEVEL") == "debug" {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
