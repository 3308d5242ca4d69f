package cli

import (
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vvka-141/mxfmeta/pkg/mxf"
)

func TestRequireFiles(t *testing.T) {
	cmd := &cobra.Command{Use: "inspect <file>..."}

	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{"no args", nil, true},
		{"one file", []string{"a.mxf"}, false},
		{"several files", []string{"a.mxf", "b.mxf", "c.mxf"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RequireFiles(cmd, tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("RequireFiles() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequireFiles_MessageIsUsageError(t *testing.T) {
	cmd := &cobra.Command{Use: "validate <file>..."}
	err := RequireFiles(cmd, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "<file>") {
		t.Errorf("error should name the missing argument, got: %v", err)
	}
	if code := mxf.ExitCodeForError(err); code != mxf.ExitUsageError {
		t.Errorf("expected exit code %d, got %d", mxf.ExitUsageError, code)
	}
}
