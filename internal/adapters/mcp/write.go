package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// RegisterWriteTools adds the tools that edit the session to the MCP server.
func RegisterWriteTools(s *server.MCPServer, store ports.WidgetStore) {
	s.AddTool(addTool(), addHandler(store))
	s.AddTool(removeTool(), removeHandler(store))
	s.AddTool(updateTool(), updateHandler(store))
	s.AddTool(moveTool(), moveHandler(store))
	s.AddTool(selectTool(), selectHandler(store))
	s.AddTool(setDocumentTool(), setDocumentHandler(store))
	s.AddTool(newDocumentTool(), newDocumentHandler(store))
	s.AddTool(importTool(), importHandler(store))
}

func widgetTypeNames() []string {
	var names []string
	for _, t := range domain.WidgetTypes() {
		names = append(names, t.String())
	}
	return names
}

// --- add ---

func addTool() mcp.Tool {
	return mcp.NewTool("add",
		mcp.WithDescription("Add a widget with default attributes. Target 0 (or omitted) appends to the document; a Layout index appends to that layout. Indices are never reused."),
		mcp.WithString("type",
			mcp.Description("Widget type"),
			mcp.Enum(widgetTypeNames()...),
			mcp.Required(),
		),
		mcp.WithNumber("target",
			mcp.Description("Index of the Layout to add to; 0 for the document"),
		),
		mcp.WithString("text",
			mcp.Description("Text overriding the default"),
		),
	)
}

func addHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		cmd := commands.NewAddWidgetCommand(store, req.GetInt("target", domain.RootIndex), req.GetString("type", ""))
		if text, ok := stringArg(req, "text"); ok {
			cmd.Overrides = cmd.Overrides.WithText(text)
		}

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- remove ---

func removeTool() mcp.Tool {
	return mcp.NewTool("remove",
		mcp.WithDescription("Remove a widget and everything inside it."),
		mcp.WithNumber("index",
			mcp.Description("Widget index"),
			mcp.Required(),
		),
	)
}

func removeHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewRemoveWidgetCommand(store, req.GetInt("index", 0)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- update ---

func updateTool() mcp.Tool {
	return mcp.NewTool("update",
		mcp.WithDescription("Change widget attributes. Only the given fields change; fields the widget's type does not have are ignored."),
		mcp.WithNumber("index",
			mcp.Description("Widget index"),
			mcp.Required(),
		),
		mcp.WithString("text", mcp.Description("Displayed text")),
		mcp.WithString("id", mcp.Description("Variable name used by the generated code")),
		mcp.WithString("execute", mcp.Description("Handler function called by a Button")),
		mcp.WithArray("options",
			mcp.Description("SelectMenu entries"),
			mcp.WithStringItems(),
		),
		mcp.WithString("kind",
			mcp.Description("Layout orientation"),
			mcp.Enum(string(domain.Vertical), string(domain.Horizontal)),
		),
	)
}

func updateHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewUpdateWidgetCommand(store, req.GetInt("index", 0), attributesArg(req)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

func attributesArg(req mcp.CallToolRequest) domain.Attributes {
	var attrs domain.Attributes
	if v, ok := stringArg(req, "text"); ok {
		attrs = attrs.WithText(v)
	}
	if v, ok := stringArg(req, "id"); ok {
		attrs = attrs.WithID(v)
	}
	if v, ok := stringArg(req, "execute"); ok {
		attrs = attrs.WithExecute(v)
	}
	if _, ok := req.GetArguments()["options"]; ok {
		attrs = attrs.WithOptions(req.GetStringSlice("options", nil))
	}
	if v, ok := stringArg(req, "kind"); ok {
		attrs = attrs.WithOrientation(domain.Orientation(strings.ToLower(v)))
	}
	return attrs
}

// stringArg distinguishes an empty string from an absent argument
func stringArg(req mcp.CallToolRequest, key string) (string, bool) {
	v, ok := req.GetArguments()[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// --- move ---

func moveTool() mcp.Tool {
	return mcp.NewTool("move",
		mcp.WithDescription("Swap a widget with its previous (up) or next (down) sibling. Does nothing at either end."),
		mcp.WithNumber("index",
			mcp.Description("Widget index"),
			mcp.Required(),
		),
		mcp.WithString("direction",
			mcp.Enum("up", "down"),
			mcp.Required(),
		),
	)
}

func moveHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewMoveWidgetCommand(store, req.GetInt("index", 0), req.GetString("direction", "")).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- select ---

func selectTool() mcp.Tool {
	return mcp.NewTool("select",
		mcp.WithDescription("Select a widget by index; 0 clears the selection."),
		mcp.WithNumber("index",
			mcp.Description("Widget index"),
			mcp.Required(),
		),
	)
}

func selectHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewSelectWidgetCommand(store, req.GetInt("index", 0)).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if result.Widget == nil {
			return mcp.NewToolResultText(result.Message), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("%s at %v", result.Message, result.Path)), nil
	}
}

// --- set_document ---

func setDocumentTool() mcp.Tool {
	return mcp.NewTool("set_document",
		mcp.WithDescription("Change the window title, geometry (WIDTHxHEIGHT) or version."),
		mcp.WithString("title"),
		mcp.WithString("geometry"),
		mcp.WithString("version"),
	)
}

func setDocumentHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var props domain.Properties
		if v, ok := stringArg(req, "title"); ok {
			props.Title = &v
		}
		if v, ok := stringArg(req, "geometry"); ok {
			props.Geometry = &v
		}
		if v, ok := stringArg(req, "version"); ok {
			props.Version = &v
		}

		result, err := commands.NewSetPropertiesCommand(store, props).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- new_document ---

func newDocumentTool() mcp.Tool {
	return mcp.NewTool("new_document",
		mcp.WithDescription("Discard all widgets and start an empty document. The index counter keeps counting."),
		mcp.WithString("title"),
		mcp.WithString("geometry"),
		mcp.WithString("version"),
	)
}

func newDocumentHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewNewDocumentCommand(store,
			req.GetString("title", ""),
			req.GetString("geometry", ""),
			req.GetString("version", ""),
		).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- import ---

func importTool() mcp.Tool {
	return mcp.NewTool("import",
		mcp.WithDescription("Replace the document with exchange JSON. The index counter moves past the highest imported index."),
		mcp.WithString("json",
			mcp.Description("Document in the exchange format"),
			mcp.Required(),
		),
	)
}

func importHandler(store ports.WidgetStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := commands.NewImportCommand(store, "json argument", []byte(req.GetString("json", ""))).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}
