package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// RegisterReadTools adds the read-only session tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, store ports.WidgetStore) {
	s.AddTool(treeTool(), treeHandler(store))
	s.AddTool(getTool(), getHandler(store))
	s.AddTool(selectedTool(), selectedHandler(store))
	s.AddTool(pathTool(), pathHandler(store))
	s.AddTool(parentTool(), parentHandler(store))
	s.AddTool(exportTool(), exportHandler(store))
	s.AddTool(previewTool(), previewHandler(store))
	s.AddTool(schemaTool(), schemaHandler())
}

// --- tree ---

func treeTool() mcp.Tool {
	return mcp.NewTool("tree",
		mcp.WithDescription("Show the document as an indented widget tree. Each line is: index, type, caption. The selected widget is marked with *."),
	)
}

func treeHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewTreeCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		doc := result.Document
		fmt.Fprintf(&sb, "%s (%s) v%s\n", doc.Title, doc.Geometry, doc.Version)
		for _, row := range result.Rows {
			mark := " "
			if row.Widget.WidgetIndex() == result.Selected {
				mark = "*"
			}
			fmt.Fprintf(&sb, "%s%s%d  %s\n", mark, strings.Repeat("  ", row.Depth+1), row.Widget.WidgetIndex(), domain.Summary(row.Widget))
		}
		fmt.Fprintf(&sb, "%s\n", result.Message)
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- get ---

func getTool() mcp.Tool {
	return mcp.NewTool("get",
		mcp.WithDescription("Show one widget (and its subtree for a Layout) as exchange JSON."),
		mcp.WithNumber("index",
			mcp.Description("Widget index"),
			mcp.Required(),
		),
	)
}

func getHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		w, err := store.Get(req.GetInt("index", 0))
		if err != nil {
			return toolError(err)
		}
		return widgetJSON(w)
	}
}

// --- selected ---

func selectedTool() mcp.Tool {
	return mcp.NewTool("selected",
		mcp.WithDescription("Show the currently selected widget."),
	)
}

func selectedHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		w, ok := store.Selected()
		if !ok {
			return mcp.NewToolResultText("Nothing selected."), nil
		}
		return widgetJSON(w)
	}
}

// --- path ---

func pathTool() mcp.Tool {
	return mcp.NewTool("path",
		mcp.WithDescription("Positional path to a widget: the sibling position of each ancestor layout, from the root down. With with_index, the widget's own index is appended."),
		mcp.WithNumber("index",
			mcp.Description("Widget index"),
			mcp.Required(),
		),
		mcp.WithBoolean("with_index",
			mcp.Description("Append the widget's own index"),
		),
	)
}

func pathHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		index := req.GetInt("index", 0)

		var path []int
		var err error
		if req.GetBool("with_index", false) {
			path, err = store.IndexPath(index)
		} else {
			path, err = store.PathTo(index)
		}
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(fmt.Sprint(path)), nil
	}
}

// --- parent ---

func parentTool() mcp.Tool {
	return mcp.NewTool("parent",
		mcp.WithDescription("Show the direct container of a widget: the document or a Layout."),
		mcp.WithNumber("index",
			mcp.Description("Widget index"),
			mcp.Required(),
		),
	)
}

func parentHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		parent, err := store.Parent(req.GetInt("index", 0))
		if err != nil {
			return toolError(err)
		}
		switch p := parent.(type) {
		case *domain.Document:
			return mcp.NewToolResultText(fmt.Sprintf("document %q (%d children)", p.Title, len(p.Children()))), nil
		case *domain.Layout:
			return mcp.NewToolResultText(fmt.Sprintf("%d  %s (%d children)", p.WidgetIndex(), domain.Summary(p), len(p.Children()))), nil
		default:
			return toolError(fmt.Errorf("unexpected container %T", parent))
		}
	}
}

// --- export ---

func exportTool() mcp.Tool {
	return mcp.NewTool("export",
		mcp.WithDescription("Serialize the document in the exchange JSON format read by the Tkinter generator."),
		mcp.WithBoolean("compact",
			mcp.Description("Omit indentation"),
		),
	)
}

func exportHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		indent := commands.DefaultIndent
		if req.GetBool("compact", false) {
			indent = ""
		}
		result, err := commands.NewExportCommand(store, indent).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(result.Data)), nil
	}
}

// --- preview ---

func previewTool() mcp.Tool {
	return mcp.NewTool("preview",
		mcp.WithDescription("Describe the window as the generator would lay it out, with placeholder captions."),
	)
}

func previewHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewPreviewCommand(store).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "[%s]  %s\n", result.Preview.Title, result.Message)
		renderPreview(&sb, result.Preview.Nodes, "  ")
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func renderPreview(sb *strings.Builder, nodes []domain.PreviewNode, prefix string) {
	for _, n := range nodes {
		switch n.Type {
		case domain.WidgetLayout:
			fmt.Fprintf(sb, "%s%s layout\n", prefix, n.Orientation)
			renderPreview(sb, n.Children, prefix+"  ")
		case domain.WidgetSelectMenu:
			fmt.Fprintf(sb, "%s<%s>\n", prefix, strings.Join(n.Options, " | "))
		default:
			fmt.Fprintf(sb, "%s%s: %s\n", prefix, n.Type, n.Caption)
		}
	}
}

// --- schema ---

func schemaTool() mcp.Tool {
	return mcp.NewTool("schema",
		mcp.WithDescription("JSON Schema of the exchange format."),
	)
}

func schemaHandler() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		data, err := json.MarshalIndent(domain.ExchangeSchema(), "", "  ")
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func widgetJSON(w domain.Widget) (*mcp.CallToolResult, error) {
	data, err := domain.MarshalWidget(w, "  ")
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(string(data)), nil
}
