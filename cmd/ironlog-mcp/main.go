// ironlog-mcp serves the workout log to AI assistants over MCP stdio.
package main

import (
	"flag"
	"log/slog"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/zacharyschulte/ironlog/internal/catalog"
	"github.com/zacharyschulte/ironlog/internal/config"
	"github.com/zacharyschulte/ironlog/internal/mcp"
	"github.com/zacharyschulte/ironlog/internal/progress"
	"github.com/zacharyschulte/ironlog/internal/storage"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "", "path to config file (built-in defaults when empty)")
	flag.Parse()

	// stdout carries the MCP protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Database.Path)
	if err != nil {
		log.Error("failed to open database", "path", cfg.Database.Path, "error", err)
		os.Exit(1)
	}
	defer store.Close()

	ds := mcp.NewStoreSource(store, catalog.NewService(store), progress.NewPlanner(store))
	srv := mcp.New(ds, Version, log)

	log.Info("IronLog MCP server on stdio", "version", Version)
	if err := mcpserver.ServeStdio(srv); err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
