package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"tkbuilder/internal/adapters/tui/views"
	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
)

var (
	previewWidth  int
	previewHeight int
	previewSelect int
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Draw a terminal mock of the window",
	Long: `Draw the window scaled to terminal cells, with placeholder captions
for widgets that have no text.

Examples:
  tkbuilder-cli preview
  tkbuilder-cli preview --select 3 --width 100`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore(cmd.Context())
		if err != nil {
			return err
		}
		result, err := commands.NewPreviewCommand(store).Execute(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(views.RenderPreview(result.Preview, previewSelect, previewWidth, previewHeight))
		return nil
	},
}

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "maximum width in columns")
	previewCmd.Flags().IntVar(&previewHeight, "height", 30, "maximum height in rows")
	previewCmd.Flags().IntVar(&previewSelect, "select", domain.RootIndex, "highlight the widget with this index")
	rootCmd.AddCommand(previewCmd)
}
