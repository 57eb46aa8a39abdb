package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/ironsheep/edge-tools-mcp/internal/edge"
	"github.com/ironsheep/edge-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("edge-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp()
			return
		}
	}

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("EDGE_MCP_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Edge MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		edge.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	accelerate := os.Getenv("EDGE_MCP_ACCEL") != "off"
	if accelerate {
		if err := edge.RegisterAccelerator(edge.NewParallelAccelerator()); err != nil {
			log.Printf("Accelerator unavailable, using software kernels: %v", err)
			accelerate = false
		}
	}
	if debug {
		log.Printf("Sobel acceleration: %t", accelerate)
	}
	defer edge.UnregisterAccelerator()

	srv := server.New(server.WithAcceleration(accelerate))
	if err := srv.Run(); err != nil {
		log.Printf("Server error: %v", err)
		edge.UnregisterAccelerator()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("edge-tools-mcp - MCP server for 3x3 edge detection")
	fmt.Println()
	fmt.Println("Usage: edge-tools-mcp [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  EDGE_MCP_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println("  EDGE_MCP_ACCEL=off          Disable the parallel Sobel accelerator")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
