package cmd

import (
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"tkbuilder/internal/adapters/filesystem"
	"tkbuilder/internal/domain"
)

func TestCLI_EditSequence(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TKBUILDER_CONFIG", "")
	path := filepath.Join(dir, "app.json")

	steps := [][]string{
		{"new", "--title", "Login", "--geometry", "400x300"},
		{"add", "Layout"},
		{"add", "Button", "--into", "1", "--text", "OK"},
		{"add", "Label"},
		{"move", "3", "up"},
	}
	for _, args := range steps {
		if err := execute(append([]string{"--file", path}, args...)...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}

	doc, err := filesystem.NewDocuments("").Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Title != "Login" || doc.Geometry != "400x300" {
		t.Errorf("unexpected properties %+v", doc)
	}
	if len(doc.Content) != 2 || doc.Content[0].Type() != domain.WidgetLabel {
		t.Fatalf("label should have moved first: %v", doc.Content)
	}
	layout := doc.Content[1].(*domain.Layout)
	if len(layout.Content) != 1 || layout.Content[0].(*domain.Button).Text != "OK" {
		t.Errorf("unexpected layout content %#v", layout.Content)
	}

	if err := execute("--file", path, "remove", "9"); err == nil {
		t.Error("removing a missing widget should fail")
	}
}

func TestCLI_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("TKBUILDER_CONFIG", "")
	path := filepath.Join(dir, "app.json")

	for _, args := range [][]string{
		{"new"},
		{"add", "Layout", "--kind", "horizontal"},
		{"add", "Button", "--into", "1", "--text", "OK"},
		{"add", "Button"},
	} {
		if err := execute(append([]string{"--file", path}, args...)...); err != nil {
			t.Fatalf("%v: %v", args, err)
		}
	}

	doc, err := filesystem.NewDocuments("").Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Content) != 2 {
		t.Fatalf("second button should land in the window: %v", doc.Content)
	}
	btn := doc.Content[1].(*domain.Button)
	if btn.Text != "New Button" {
		t.Errorf("second button should use the template text, got %q", btn.Text)
	}
}

func TestIndexArg(t *testing.T) {
	if n, err := indexArg("12"); err != nil || n != 12 {
		t.Errorf("indexArg(12) = %d, %v", n, err)
	}
	if _, err := indexArg("twelve"); err == nil {
		t.Error("expected error for a non-number")
	}
}

// execute runs the CLI once with every flag back at its default
func execute(args ...string) error {
	resetFlags(rootCmd)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	}
	c.Flags().VisitAll(reset)
	c.PersistentFlags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}
