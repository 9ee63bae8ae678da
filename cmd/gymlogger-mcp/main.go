package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/antonKrizmanic/gymlogger/internal/config"
	gymmcp "github.com/antonKrizmanic/gymlogger/internal/mcp"
	"github.com/antonKrizmanic/gymlogger/internal/storage"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	userID := flag.Int("user", 1, "user ID to scope all queries to")
	flag.Parse()

	// Logs go to stderr; stdout carries the MCP protocol.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	log.Info("GymLogger MCP server starting", "version", Version)

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()
	db, err := storage.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	log.Info("database connected")

	mcpServer := gymmcp.New(db, Version, log)

	err = server.ServeStdio(mcpServer,
		server.WithStdioContextFunc(func(ctx context.Context) context.Context {
			return gymmcp.WithUserID(ctx, *userID)
		}),
	)
	if err != nil {
		log.Error("mcp server error", "error", err)
		os.Exit(1)
	}
}
