// Package logging provides categorized structured logging for the scribe
// pipeline. It stays a no-op until Enable is called so library embedders
// get silence by default.
package logging

import (
	"sync"

	"go.uber.org/zap"
)

// Category names one pipeline stage's logger.
type Category string

const (
	CategoryDecode Category = "decode" // response decoding strategies
	CategoryBuild  Category = "build"  // markdown tokenization
	CategoryRender Category = "render" // terminal presentation
)

var (
	mu   sync.RWMutex
	base = zap.NewNop()
)

// Enable installs a real zap logger. debug selects the development config
// (console-friendly, debug level); otherwise the production config is used.
func Enable(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

// SetLogger replaces the backing logger. Passing nil restores the no-op.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	if l == nil {
		l = zap.NewNop()
	}
	base = l
}

// Get returns the sugared logger for a category.
func Get(c Category) *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return base.Named(string(c)).Sugar()
}

// Sync flushes buffered log entries. Safe to call on the no-op logger.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	_ = base.Sync()
}
