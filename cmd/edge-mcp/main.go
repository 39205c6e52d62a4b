package main

import (
	"fmt"
	"os"

	"github.com/ironsheep/edge-detect-mcp/internal/logger"
	"github.com/ironsheep/edge-detect-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("edge-detect-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("edge-detect-mcp - MCP server for Canny and gradient edge detection")
			fmt.Println()
			fmt.Println("Usage: edge-detect-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Println("  EDGE_MCP_LOG_LEVEL=debug      Log level: debug, info, warn, error (default info)")
			fmt.Println("  EDGE_MCP_LOG_FORMAT=console   Human-readable logs instead of JSON")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	// stdout is for MCP protocol
	log := logger.FromEnv(os.Stderr, os.Getenv)
	log.Debug().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Msg("starting edge-detect-mcp")

	srv := server.New(server.WithLogger(log))
	if err := srv.Run(); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
