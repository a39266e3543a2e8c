package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
)

var (
	newTitle    string
	newGeometry string
	newVersion  string
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a new, empty document",
	Long: `Replace the document file with an empty document. Unset flags fall
back to the configured defaults.

Examples:
  tkbuilder-cli new
  tkbuilder-cli new --title "Login" --geometry 400x300`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store := NewStore()
		blank := cfg.NewDocument()

		newCmd := commands.NewNewDocumentCommand(store,
			withDefault(newTitle, blank.Title),
			withDefault(newGeometry, blank.Geometry),
			withDefault(newVersion, blank.Version),
		)
		result, err := newCmd.Execute(cmd.Context())
		if err != nil {
			return err
		}
		if err := SaveStore(store); err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

var setCmd = &cobra.Command{
	Use:   "set",
	Short: "Change the window title, geometry or version",
	Long: `Change the document properties. Only the flags given are changed.

Examples:
  tkbuilder-cli set --title "Settings"
  tkbuilder-cli set --geometry 640x480 --version 1.2.0`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var props domain.Properties
		if cmd.Flags().Changed("title") {
			props.Title = &newTitle
		}
		if cmd.Flags().Changed("geometry") {
			props.Geometry = &newGeometry
		}
		if cmd.Flags().Changed("version") {
			props.Version = &newVersion
		}
		if props == (domain.Properties{}) {
			return fmt.Errorf("nothing to set: pass --title, --geometry or --version")
		}

		store, err := GetStore(cmd.Context())
		if err != nil {
			return err
		}
		result, err := commands.NewSetPropertiesCommand(store, props).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if err := SaveStore(store); err != nil {
			return err
		}
		fmt.Println(result.Message)
		return nil
	},
}

func withDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func init() {
	for _, c := range []*cobra.Command{newCmd, setCmd} {
		c.Flags().StringVar(&newTitle, "title", "", "window title")
		c.Flags().StringVar(&newGeometry, "geometry", "", "window size as WIDTHxHEIGHT")
		c.Flags().StringVar(&newVersion, "version", "", "document version")
	}
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(setCmd)
}
