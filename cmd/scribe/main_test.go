package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"scribe/internal/config"
)

func writeInput(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "response.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRenderCommand_JSONOutput(t *testing.T) {
	cfg = config.Default()
	renderJSON = true
	defer func() { renderJSON = false }()

	path := writeInput(t, `{"markdown": "Team Sync\n\n## NEXT STEPS", "next_steps": [{"owner": "Casey", "task": "Mock", "status": "GREEN"}]}`)

	var out bytes.Buffer
	renderCmd.SetOut(&out)
	if err := runRender(renderCmd, []string{path}); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}

	s := out.String()
	for _, want := range []string{`"type": "heading"`, `"type": "table"`, "Casey"} {
		if !strings.Contains(s, want) {
			t.Fatalf("output missing %s:\n%s", want, s)
		}
	}
}

func TestRenderCommand_GarbageInputStillRenders(t *testing.T) {
	cfg = config.Default()
	path := writeInput(t, "not json at all {{{")

	var out bytes.Buffer
	renderCmd.SetOut(&out)
	if err := runRender(renderCmd, []string{path}); err != nil {
		t.Fatalf("runRender() error = %v", err)
	}
	if !strings.Contains(out.String(), "not json at all") {
		t.Fatalf("garbage input should degrade to markdown:\n%s", out.String())
	}
}

func TestAskCommand_FormatError(t *testing.T) {
	cfg = config.Default()
	path := writeInput(t, "no fence here")

	var out bytes.Buffer
	askCmd.SetOut(&out)
	if err := runAsk(askCmd, []string{path}); err != nil {
		t.Fatalf("runAsk() error = %v", err)
	}
	if !strings.Contains(out.String(), "(not answered from the transcript)") {
		t.Fatalf("expected the error-state marker:\n%s", out.String())
	}
}

func TestReadInput_MissingFile(t *testing.T) {
	if _, err := readInput([]string{"/does/not/exist"}); err == nil {
		t.Fatal("expected an error")
	}
}
