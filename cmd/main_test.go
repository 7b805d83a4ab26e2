package main

import (
	"strings"
	"testing"
)

func TestArgumentCount(t *testing.T) {
	tests := [][]string{
		{},
		{"1 + 2", "3"},
	}

	for _, args := range tests {
		cmd := newRootCmd()
		cmd.SetArgs(args)

		err := cmd.Execute()
		if err == nil {
			t.Errorf("args %q: expected an error", args)
			continue
		}
		if !strings.Contains(err.Error(), "accepts 1 arg(s)") {
			t.Errorf("args %q: unexpected error %v", args, err)
		}
	}
}

func TestMissingConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", "does-not-exist.cue", "1"})

	if err := cmd.Execute(); err == nil || !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("expected a config read error, got %v", err)
	}
}
