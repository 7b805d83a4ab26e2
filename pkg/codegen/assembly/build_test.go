package assembly_test

import (
	"os"
	"path/filepath"
	"rvcc/pkg/codegen/assembly"
	"strings"
	"testing"
)

func TestBuildCopiesExecutable(t *testing.T) {
	output := filepath.Join(t.TempDir(), "prog")
	code := "  .global main\nmain:\n  li a0, 5\n  ret\n"

	err := assembly.Build(code, output,
		[]string{"cp", assembly.SourceFile, assembly.ObjectFile},
		[]string{"cp", assembly.ObjectFile, assembly.ExecFile},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if string(got) != code {
		t.Errorf("expected %q, got %q", code, got)
	}
}

func TestBuildReportsToolFailure(t *testing.T) {
	output := filepath.Join(t.TempDir(), "prog")

	err := assembly.Build("", output, []string{"false"})
	if err == nil {
		t.Fatal("expected an error from a failing tool")
	}
	if !strings.Contains(err.Error(), "false failed") {
		t.Errorf("unexpected error message: %v", err)
	}
}

func TestBuildWithoutExecutable(t *testing.T) {
	output := filepath.Join(t.TempDir(), "prog")

	if err := assembly.Build("", output); err == nil {
		t.Fatal("expected an error when no executable is produced")
	}
}
