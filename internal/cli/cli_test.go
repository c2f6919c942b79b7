package cli

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
)

func TestRootCommandStructure(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	if root.Use != "captain-arro" {
		t.Errorf("root.Use = %q", root.Use)
	}

	want := []string{"generate", "batch", "preview", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestNewRunnerNoCache(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)

	runner, err := c.newRunner(true)
	if err != nil {
		t.Fatalf("newRunner(true) error = %v", err)
	}
	if runner == nil {
		t.Fatal("newRunner(true) returned nil runner")
	}
	if err := runner.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNewCacheFileBacked(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	cc, err := newCache(false)
	if err != nil {
		t.Fatalf("newCache(false) error = %v", err)
	}
	if cc == nil {
		t.Fatal("newCache(false) returned nil cache")
	}
	if err := cc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
