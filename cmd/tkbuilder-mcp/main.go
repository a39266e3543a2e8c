package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tkbuilder/internal/adapters/filesystem"
	mcpadapter "tkbuilder/internal/adapters/mcp"
	"tkbuilder/internal/adapters/memory"
	"tkbuilder/internal/adapters/sqlite"
	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("tkbuilder-mcp: %v", err)
	}

	fileFlag := flag.String("file", "", "document file to start the session from")
	libraryFlag := flag.String("library", cfg.LibraryPath, "snapshot library database")
	flag.Parse()

	store := memory.NewStore(cfg.NewDocument())
	if *fileFlag != "" {
		data, err := filesystem.NewDocuments("").Read(*fileFlag)
		if err != nil {
			log.Fatalf("tkbuilder-mcp: %v", err)
		}
		if _, err := commands.NewImportCommand(store, *fileFlag, data).Execute(context.Background()); err != nil {
			log.Fatalf("tkbuilder-mcp: %v", err)
		}
	}

	lib := sqlite.NewLibrary()
	if err := lib.Open(*libraryFlag); err != nil {
		log.Fatalf("tkbuilder-mcp: %v", err)
	}
	defer lib.Close()

	mcpServer := server.NewMCPServer(
		"tkbuilder-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, store)
	mcpadapter.RegisterWriteTools(mcpServer, store)
	mcpadapter.RegisterSnapshotTools(mcpServer, store, lib)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("tkbuilder-mcp: %v", err)
	}
}
