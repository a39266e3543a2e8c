package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tkbuilder/internal/application"
	"tkbuilder/internal/ports"
)

// RegisterSnapshotTools adds the snapshot library tools to the MCP server.
func RegisterSnapshotTools(s *server.MCPServer, store ports.WidgetStore, lib ports.SnapshotLibrary) {
	s.AddTool(snapshotSaveTool(), snapshotSaveHandler(store, lib))
	s.AddTool(snapshotLoadTool(), snapshotLoadHandler(store, lib))
	s.AddTool(snapshotListTool(), snapshotListHandler(lib))
	s.AddTool(snapshotDeleteTool(), snapshotDeleteHandler(lib))
}

func snapshotNameParam() mcp.ToolOption {
	return mcp.WithString("name",
		mcp.Description("Snapshot name"),
		mcp.Required(),
	)
}

// --- snapshot_save ---

func snapshotSaveTool() mcp.Tool {
	return mcp.NewTool("snapshot_save",
		mcp.WithDescription("Store the current document in the snapshot library under a name, replacing any snapshot with that name."),
		snapshotNameParam(),
	)
}

func snapshotSaveHandler(store ports.WidgetStore, lib ports.SnapshotLibrary) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snap, err := lib.Save(req.GetString("name", ""), store.Document())
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Saved snapshot %s (%d widgets)", snap.Name, snap.Widgets)), nil
	}
}

// --- snapshot_load ---

func snapshotLoadTool() mcp.Tool {
	return mcp.NewTool("snapshot_load",
		mcp.WithDescription("Replace the document with a stored snapshot."),
		snapshotNameParam(),
	)
}

func snapshotLoadHandler(store ports.WidgetStore, lib ports.SnapshotLibrary) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if err := application.ValidateRequired("snapshot", name); err != nil {
			return toolError(err)
		}
		doc, err := lib.Load(name)
		if err != nil {
			return toolError(err)
		}
		if err := store.Replace(doc); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprintf("Loaded snapshot %s: %s", name, doc.Title)), nil
	}
}

// --- snapshot_list ---

func snapshotListTool() mcp.Tool {
	return mcp.NewTool("snapshot_list",
		mcp.WithDescription("List stored snapshots, newest first."),
	)
}

func snapshotListHandler(lib ports.SnapshotLibrary) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		snaps, err := lib.List()
		if err != nil {
			return toolError(err)
		}
		if len(snaps) == 0 {
			return mcp.NewToolResultText("No snapshots."), nil
		}

		var sb strings.Builder
		for _, s := range snaps {
			fmt.Fprintf(&sb, "%s  %s  %d widgets  %s\n", s.CreatedAt.Format("2006-01-02 15:04"), s.Name, s.Widgets, s.Title)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- snapshot_delete ---

func snapshotDeleteTool() mcp.Tool {
	return mcp.NewTool("snapshot_delete",
		mcp.WithDescription("Delete a stored snapshot."),
		snapshotNameParam(),
	)
}

func snapshotDeleteHandler(lib ports.SnapshotLibrary) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		name := req.GetString("name", "")
		if err := lib.Delete(name); err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText("Deleted snapshot " + name), nil
	}
}
