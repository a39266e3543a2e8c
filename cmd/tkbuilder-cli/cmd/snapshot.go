package cmd

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Keep named copies of the document",
	Long: `Save, restore, list and delete named snapshots of the document in
the snapshot library (a SQLite database).`,
}

var snapshotSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save the document under a name, replacing any snapshot of that name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := GetStore(cmd.Context())
		if err != nil {
			return err
		}
		lib, err := OpenLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		snap, err := lib.Save(args[0], store.Document())
		if err != nil {
			return err
		}
		fmt.Printf("Saved snapshot %q (%d widgets)\n", snap.Name, snap.Widgets)
		return nil
	},
}

var snapshotLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Replace the document with a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := OpenLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		doc, err := lib.Load(args[0])
		if err != nil {
			return err
		}
		data, err := domain.MarshalDocument(doc, "")
		if err != nil {
			return err
		}

		store := NewStore()
		result, err := commands.NewImportCommand(store, "snapshot "+args[0], data).Execute(cmd.Context())
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

var snapshotListCmd = &cobra.Command{
	Use:   "list",
	Short: "List snapshots, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := OpenLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		snaps, err := lib.List()
		if err != nil {
			return err
		}
		if len(snaps) == 0 {
			fmt.Println("No snapshots")
			return nil
		}

		t := table.New().
			Border(lipgloss.HiddenBorder()).
			Headers("NAME", "TITLE", "WIDGETS", "SAVED")
		for _, s := range snaps {
			t.Row(s.Name, s.Title, strconv.Itoa(s.Widgets), s.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Println(t.String())
		return nil
	},
}

var snapshotDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a snapshot",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := OpenLibrary()
		if err != nil {
			return err
		}
		defer lib.Close()

		if err := lib.Delete(args[0]); err != nil {
			return err
		}
		fmt.Printf("Deleted snapshot %q\n", args[0])
		return nil
	},
}

func init() {
	snapshotCmd.AddCommand(snapshotSaveCmd)
	snapshotCmd.AddCommand(snapshotLoadCmd)
	snapshotCmd.AddCommand(snapshotListCmd)
	snapshotCmd.AddCommand(snapshotDeleteCmd)
	rootCmd.AddCommand(snapshotCmd)
}
