package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/oukeidos/langcat/internal/cleanup"
	"github.com/oukeidos/langcat/internal/logger"
	"github.com/oukeidos/langcat/internal/prompt"
)

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Cleanup(func() { logger.Init(logger.LevelInfo, nil) })
	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if cleanupErr := cleanup.RunAll(); cleanupErr != nil {
		t.Fatalf("cleanup: %v", cleanupErr)
	}
	return stdout.String(), stderr.String(), err
}

func writeList(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xcode-ui-languages-list.txt")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("write list: %v", err)
	}
	return path
}

func withConfirmer(t *testing.T, interactive bool, answer string) {
	t.Helper()
	prev := newConfirmer
	newConfirmer = func() prompt.Confirmer {
		return prompt.Confirmer{
			In:            bytes.NewBufferString(answer),
			Out:           &bytes.Buffer{},
			IsInteractive: func() bool { return interactive },
		}
	}
	t.Cleanup(func() { newConfirmer = prev })
}
