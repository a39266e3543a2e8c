package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
)

var (
	addInto     int
	attrText    string
	attrID      string
	attrExecute string
	attrOptions []string
	attrKind    string
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Display the widget tree",
	Long: `Display every widget in document order with its index.

Example:
  tkbuilder-cli tree`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore(cmd.Context())
		if err != nil {
			return err
		}
		result, err := commands.NewTreeCommand(store).Execute(cmd.Context())
		if err != nil {
			return err
		}

		doc := result.Document
		fmt.Printf("%s (%s) v%s\n", doc.Title, doc.Geometry, doc.Version)
		for _, row := range result.Rows {
			indent := strings.Repeat("  ", row.Depth+1)
			fmt.Printf("%s%d %s\n", indent, row.Widget.WidgetIndex(), domain.Summary(row.Widget))
		}
		fmt.Printf("%s, highest index %d\n", result.Message, result.MaxIndex)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add <type>",
	Short: "Add a widget",
	Long: `Append a widget to the window or, with --into, to a layout.

Types: Label, Input, Button, CheckBox, RadioButton, SelectMenu, Layout.
Attribute flags override the type's defaults.

Examples:
  tkbuilder-cli add Layout --kind horizontal
  tkbuilder-cli add Button --into 1 --text OK --execute on_ok
  tkbuilder-cli add SelectMenu --options red --options green`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore(cmd.Context())
		if err != nil {
			return err
		}

		addCmd := commands.NewAddWidgetCommand(store, addInto, args[0])
		addCmd.Overrides = attributesFlags(cmd)
		result, err := addCmd.Execute(cmd.Context())
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

var removeCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove a widget",
	Long: `Remove a widget. Removing a layout also removes everything inside it.

Example:
  tkbuilder-cli remove 3`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := indexArg(args[0])
		if err != nil {
			return err
		}
		store, err := GetStore(cmd.Context())
		if err != nil {
			return err
		}

		result, err := commands.NewRemoveWidgetCommand(store, index).Execute(cmd.Context())
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

var updateCmd = &cobra.Command{
	Use:   "update <index>",
	Short: "Change a widget's attributes",
	Long: `Change the attributes given as flags. Attributes the widget's type
does not have are ignored.

Examples:
  tkbuilder-cli update 2 --text "Save"
  tkbuilder-cli update 4 --options small --options large
  tkbuilder-cli update 1 --kind horizontal`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := indexArg(args[0])
		if err != nil {
			return err
		}
		store, err := GetStore(cmd.Context())
		if err != nil {
			return err
		}

		result, err := commands.NewUpdateWidgetCommand(store, index, attributesFlags(cmd)).Execute(cmd.Context())
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

var moveCmd = &cobra.Command{
	Use:   "move <index> <up|down>",
	Short: "Move a widget among its siblings",
	Long: `Swap a widget with its previous or next sibling. A widget never
leaves its container.

Examples:
  tkbuilder-cli move 3 up
  tkbuilder-cli move 3 down`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := indexArg(args[0])
		if err != nil {
			return err
		}
		store, err := GetStore(cmd.Context())
		if err != nil {
			return err
		}

		result, err := commands.NewMoveWidgetCommand(store, index, args[1]).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if result.Moved {
			if err := SaveStore(store); err != nil {
				return err
			}
		}
		fmt.Println(result.Message)
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <index>",
	Short: "Show a widget, its parent and where it sits",
	Long: `Print a widget's JSON, its container and its position path.

Example:
  tkbuilder-cli show 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := indexArg(args[0])
		if err != nil {
			return err
		}
		store, err := GetStore(cmd.Context())
		if err != nil {
			return err
		}

		result, err := commands.NewSelectWidgetCommand(store, index).Execute(cmd.Context())
		if err != nil {
			return err
		}
		data, err := domain.MarshalWidget(result.Widget, commands.DefaultIndent)
		if err != nil {
			return err
		}
		positions, err := store.PathTo(index)
		if err != nil {
			return err
		}
		parent, err := store.Parent(index)
		if err != nil {
			return err
		}
		siblings, err := store.ContentAt(positions)
		if err != nil {
			return err
		}

		fmt.Println(string(data))
		fmt.Printf("parent:   %s\n", containerName(parent))
		fmt.Printf("position: %v\n", positions)
		fmt.Printf("indices:  %v\n", result.Path)
		fmt.Printf("siblings: %d\n", len(siblings))
		for i, w := range siblings {
			mark := " "
			if w.WidgetIndex() == index {
				mark = "*"
			}
			fmt.Printf("  %s %d. %d %s\n", mark, i+1, w.WidgetIndex(), domain.Summary(w))
		}
		return nil
	},
}

func containerName(c domain.Container) string {
	if w, ok := c.(domain.Widget); ok {
		return fmt.Sprintf("%d %s", w.WidgetIndex(), domain.Summary(w))
	}
	return "document"
}

// attributesFlags collects the attribute flags that were set
func attributesFlags(cmd *cobra.Command) domain.Attributes {
	var attrs domain.Attributes
	flags := cmd.Flags()
	if flags.Changed("text") {
		attrs = attrs.WithText(attrText)
	}
	if flags.Changed("id") {
		attrs = attrs.WithID(attrID)
	}
	if flags.Changed("execute") {
		attrs = attrs.WithExecute(attrExecute)
	}
	if flags.Changed("options") {
		attrs = attrs.WithOptions(attrOptions)
	}
	if flags.Changed("kind") {
		attrs = attrs.WithOrientation(domain.Orientation(strings.ToLower(attrKind)))
	}
	return attrs
}

func indexArg(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid widget index %q", s)
	}
	return index, nil
}

func init() {
	for _, c := range []*cobra.Command{addCmd, updateCmd} {
		c.Flags().StringVar(&attrText, "text", "", "displayed text")
		c.Flags().StringVar(&attrID, "id", "", "widget id")
		c.Flags().StringVar(&attrExecute, "execute", "", "callback name (Button)")
		c.Flags().StringSliceVar(&attrOptions, "options", nil, "menu entries (SelectMenu), repeat or comma separate")
		c.Flags().StringVar(&attrKind, "kind", "", "layout orientation: vertical or horizontal")
	}
	addCmd.Flags().IntVar(&addInto, "into", 0, "index of the layout to add into (0 for the window)")

	rootCmd.AddCommand(treeCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(showCmd)
}
