package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"tkbuilder/internal/adapters/clipboard"
	"tkbuilder/internal/adapters/editor"
	"tkbuilder/internal/adapters/filesystem"
	"tkbuilder/internal/adapters/memory"
	"tkbuilder/internal/adapters/tui"
	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fileFlag := flag.String("file", cfg.DocumentPath, "document file to open and write")
	flag.Parse()

	// Initialize adapters
	files := filesystem.NewDocuments("")
	store := memory.NewStore(cfg.NewDocument())
	if files.Exists(*fileFlag) {
		data, err := files.Read(*fileFlag)
		if err == nil {
			_, err = commands.NewImportCommand(store, *fileFlag, data).Execute(context.Background())
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	// Create and run TUI app
	app := tui.NewApp(store, tui.Options{
		Files:        files,
		Clipboard:    clipboard.Detect(),
		Editor:       editor.NewOpener(),
		DocumentPath: *fileFlag,
		Blank:        cfg.NewDocument(),
	})

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
