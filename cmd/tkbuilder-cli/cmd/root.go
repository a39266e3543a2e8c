package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tkbuilder/internal/adapters/filesystem"
	"tkbuilder/internal/adapters/memory"
	"tkbuilder/internal/adapters/sqlite"
	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/config"
	"tkbuilder/internal/ports"
)

var (
	documentPath string
	libraryPath  string
	cfg          config.Config
	files        *filesystem.Documents
)

var rootCmd = &cobra.Command{
	Use:   "tkbuilder-cli",
	Short: "CLI for editing Tkinter window documents",
	Long: `tkbuilder-cli edits the JSON document a Tkinter code generator
consumes: a window title, geometry and version plus a tree of widgets.

Every command loads the document file, applies one change and writes
it back. Widgets are addressed by their creation index as shown by
the tree command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip initialization for help commands
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		c, err := config.Load()
		if err != nil {
			return err
		}
		cfg = c
		if documentPath == "" {
			documentPath = cfg.DocumentPath
		}
		if libraryPath == "" {
			libraryPath = cfg.LibraryPath
		}
		files = filesystem.NewDocuments("")
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&documentPath, "file", "f", "", "document file (default from config, then "+config.DefaultDocumentPath+")")
	rootCmd.PersistentFlags().StringVar(&libraryPath, "library", "", "snapshot library database (default $XDG_DATA_HOME/tkbuilder/library.db)")
}

// NewStore returns an empty session built from the configured defaults
func NewStore() *memory.Store {
	return memory.NewStore(cfg.NewDocument())
}

// GetStore loads the document file into a session. A missing file starts
// from the configured defaults.
func GetStore(ctx context.Context) (ports.WidgetStore, error) {
	store := NewStore()
	if !files.Exists(documentPath) {
		return store, nil
	}

	data, err := files.Read(documentPath)
	if err != nil {
		return nil, err
	}
	if _, err := commands.NewImportCommand(store, documentPath, data).Execute(ctx); err != nil {
		return nil, err
	}
	return store, nil
}

// SaveStore writes the session back to the document file
func SaveStore(store ports.WidgetStore) error {
	if err := files.Save(documentPath, store.Document()); err != nil {
		return fmt.Errorf("failed to save %s: %w", documentPath, err)
	}
	return nil
}

// OpenLibrary opens the snapshot library; the caller closes it
func OpenLibrary() (ports.SnapshotLibrary, error) {
	lib := sqlite.NewLibrary()
	if err := lib.Open(libraryPath); err != nil {
		return nil, fmt.Errorf("failed to open snapshot library: %w", err)
	}
	return lib, nil
}
