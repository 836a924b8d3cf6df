package logging

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGet_NopByDefault(t *testing.T) {
	SetLogger(nil)
	// Must not panic and must accept arbitrary fields.
	Get(CategoryDecode).Debugw("ignored", "k", "v")
	Sync()
}

func TestSetLogger_CategoriesAreNamed(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	defer SetLogger(nil)

	Get(CategoryBuild).Debugw("document built", "blocks", 3)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if entries[0].LoggerName != string(CategoryBuild) {
		t.Fatalf("logger name = %q, want %q", entries[0].LoggerName, CategoryBuild)
	}
}
