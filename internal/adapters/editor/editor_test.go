package editor

import (
	"os"
	"testing"
)

func TestOpener_Command(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		wantArgs []string
	}{
		{
			name:     "editor only",
			env:      map[string]string{"EDITOR": "nano"},
			wantArgs: []string{"nano", "/tmp/doc.json"},
		},
		{
			name:     "visual wins",
			env:      map[string]string{"EDITOR": "nano", "VISUAL": "hx"},
			wantArgs: []string{"hx", "/tmp/doc.json"},
		},
		{
			name:     "flags are kept",
			env:      map[string]string{"EDITOR": "code --wait"},
			wantArgs: []string{"code", "--wait", "/tmp/doc.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Opener{lookup: func(k string) string { return tt.env[k] }}
			cmd, err := o.Command("/tmp/doc.json")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(cmd.Args) != len(tt.wantArgs) {
				t.Fatalf("Args = %v, want %v", cmd.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if cmd.Args[i] != tt.wantArgs[i] {
					t.Errorf("Args = %v, want %v", cmd.Args, tt.wantArgs)
					break
				}
			}
		})
	}
}

func TestSession(t *testing.T) {
	s, err := NewSession([]byte(`{"title":"a"}`))
	if err != nil {
		t.Fatal(err)
	}

	_, changed, err := s.Result()
	if err != nil {
		t.Fatal(err)
	}
	if changed {
		t.Error("untouched file should not be reported as changed")
	}

	if err := os.WriteFile(s.Path(), []byte(`{"title":"b"}`), 0600); err != nil {
		t.Fatal(err)
	}
	data, changed, err := s.Result()
	if err != nil {
		t.Fatal(err)
	}
	if !changed || string(data) != `{"title":"b"}` {
		t.Errorf("Result() = %q, %v", data, changed)
	}

	if err := s.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(s.Path()); !os.IsNotExist(err) {
		t.Error("Close should remove the file")
	}
}
