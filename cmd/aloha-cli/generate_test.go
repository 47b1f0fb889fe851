package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	cdx "github.com/CycloneDX/cyclonedx-go"

	"github.com/idlab-discover/aloha-cli/internal/apperr"
	"github.com/idlab-discover/aloha-cli/internal/bom"
)

// run executes the root command; flags keep their values between runs, so
// every test passes the ones it depends on.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestGenerate_DummyMode(t *testing.T) {
	dir := t.TempDir() + string(os.PathSeparator)

	out, err := run(t, "org/demo", "--hf-mode", "dummy", "--log-level", "standard", "-o", dir)
	if err != nil {
		t.Fatalf("execute: %v\n%s", err, out)
	}
	path := filepath.Join(dir, "org_demo.json")
	if !strings.Contains(out, "AIBoM successfully created") || !strings.Contains(out, path) {
		t.Errorf("output = %q", out)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()
	doc := new(cdx.BOM)
	if err := cdx.NewBOMDecoder(f, cdx.BOMFileFormatJSON).Decode(doc); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if doc.Metadata.Component.BOMRef != bom.Ref(doc.Metadata.Component.Name) {
		t.Errorf("model bom-ref = %q", doc.Metadata.Component.BOMRef)
	}
	if doc.Components == nil || len(*doc.Components) != 1 {
		t.Fatalf("expected one dataset component")
	}
}

func TestGenerate_ExplicitJSONPathQuiet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "bom.json")

	out, err := run(t, "org/demo", "--hf-mode", "dummy", "--log-level", "quiet", "-o", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if out != "" {
		t.Errorf("quiet mode wrote %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected %s: %v", path, err)
	}
}

func TestGenerate_Errors(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		args     []string
		userErr  bool
		contains string
	}{
		{
			name:    "invalid log level",
			args:    []string{"org/demo", "--hf-mode", "dummy", "--log-level", "loud", "-o", blocker + "/"},
			userErr: true,
		},
		{
			name:    "invalid mode",
			args:    []string{"org/demo", "--hf-mode", "offline", "--log-level", "quiet", "-o", blocker + "/"},
			userErr: true,
		},
		{
			name:     "write failure",
			args:     []string{"org/demo", "--hf-mode", "dummy", "--log-level", "quiet", "-o", blocker + "/"},
			contains: "AIBoM creation failed",
		},
		{
			name:    "missing model id",
			args:    []string{"--hf-mode", "dummy"},
			userErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args...)
			if err == nil {
				t.Fatalf("expected error")
			}
			if apperr.IsUser(err) != tt.userErr {
				t.Errorf("IsUser(%v) = %v, want %v", err, !tt.userErr, tt.userErr)
			}
			if tt.contains != "" {
				if !strings.Contains(err.Error(), tt.contains) || !apperr.IsWrite(err) {
					t.Errorf("err = %v, want write error containing %q", err, tt.contains)
				}
			}
		})
	}
}
