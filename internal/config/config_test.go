package config

import (
	"os"
	"path/filepath"
	"testing"

	"tkbuilder/internal/domain"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.yaml")
	if err := os.WriteFile(valid, []byte("title: Inventory\ngeometry: 800x600\nlibrary_path: /tmp/lib.db\n"), 0644); err != nil {
		t.Fatal(err)
	}
	badGeometry := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(badGeometry, []byte("geometry: huge\n"), 0644); err != nil {
		t.Fatal(err)
	}
	broken := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(broken, []byte("title: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		env     map[string]string
		want    Config
		wantErr bool
	}{
		{
			name: "defaults without a file",
			env:  map[string]string{"XDG_CONFIG_HOME": filepath.Join(dir, "none")},
			want: Default(),
		},
		{
			name: "file over defaults",
			env:  map[string]string{EnvConfig: valid},
			want: Config{
				Title:        "Inventory",
				Geometry:     "800x600",
				Version:      domain.DefaultVersion,
				DocumentPath: DefaultDocumentPath,
				LibraryPath:  "/tmp/lib.db",
			},
		},
		{
			name: "env over file",
			env:  map[string]string{EnvConfig: valid, EnvDocument: "form.json", EnvLibrary: "/srv/lib.db"},
			want: Config{
				Title:        "Inventory",
				Geometry:     "800x600",
				Version:      domain.DefaultVersion,
				DocumentPath: "form.json",
				LibraryPath:  "/srv/lib.db",
			},
		},
		{
			name:    "explicit file must exist",
			env:     map[string]string{EnvConfig: filepath.Join(dir, "missing.yaml")},
			wantErr: true,
		},
		{
			name:    "invalid geometry",
			env:     map[string]string{EnvConfig: badGeometry},
			wantErr: true,
		},
		{
			name:    "malformed yaml",
			env:     map[string]string{EnvConfig: broken},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := load(envFrom(tt.env))
			if (err != nil) != tt.wantErr {
				t.Fatalf("load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("load() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestConfig_NewDocument(t *testing.T) {
	cfg := Default()
	cfg.Title = "Calc"
	doc := cfg.NewDocument()
	if doc.Title != "Calc" || doc.Geometry != domain.DefaultGeometry || len(doc.Content) != 0 {
		t.Errorf("unexpected document: %+v", doc)
	}
}
