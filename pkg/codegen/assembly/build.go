package assembly

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// Placeholders substituted in toolchain commands
const (
	SourceFile = "{src}"
	ObjectFile = "{obj}"
	ExecFile   = "{exe}"
)

// Build writes code to a temporary directory, runs each toolchain command in
// order and copies the resulting executable to output.
func Build(code, output string, commands ...[]string) error {
	tempDir, err := os.MkdirTemp("", "rvcc_build_")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer os.RemoveAll(tempDir)

	asmFile := filepath.Join(tempDir, "program.s")
	if err := os.WriteFile(asmFile, []byte(code), 0644); err != nil {
		return fmt.Errorf("failed to write assembly file: %w", err)
	}

	replacer := strings.NewReplacer(
		SourceFile, asmFile,
		ObjectFile, filepath.Join(tempDir, "program.o"),
		ExecFile, filepath.Join(tempDir, "program"),
	)

	for _, command := range commands {
		if len(command) == 0 {
			continue
		}

		args := make([]string, len(command))
		for i, arg := range command {
			args[i] = replacer.Replace(arg)
		}

		log.Debug("Running toolchain", "command", strings.Join(args, " "))
		cmd := exec.Command(args[0], args[1:]...)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%s failed: %w\nOutput: %s", args[0], err, out)
		}
	}

	exe, err := os.ReadFile(filepath.Join(tempDir, "program"))
	if err != nil {
		return fmt.Errorf("toolchain produced no executable: %w", err)
	}

	if err := os.WriteFile(output, exe, 0755); err != nil {
		return fmt.Errorf("failed to copy executable: %w", err)
	}

	return nil
}
