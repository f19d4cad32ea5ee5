package textfile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/npillmayer/itreap"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func writeLines(t *testing.T, n int, trailingNewline bool) (string, []string) {
	t.Helper()
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %d: lorem ipsum dolor sit amet", i)
	}
	content := strings.Join(lines, "\n")
	if trailingNewline && n > 0 {
		content += "\n"
	}
	name := filepath.Join(t.TempDir(), "lorem.txt")
	if err := os.WriteFile(name, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return name, lines
}

func TestLoad(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "itreap")
	defer teardown()
	//
	for _, trailing := range []bool{true, false} {
		name, lines := writeLines(t, 2345, trailing)
		tree, err := Load(name)
		if err != nil {
			t.Fatal(err.Error())
		}
		if tree.Len() != len(lines) {
			t.Fatalf("expected %d lines, got %d", len(lines), tree.Len())
		}
		for i, line := range tree.All() {
			if line != lines[i] {
				t.Fatalf("line %d: got %q want %q", i, line, lines[i])
			}
		}
		if err := tree.Check(); err != nil {
			t.Fatal(err)
		}
	}
}

func TestLoadEmptyFile(t *testing.T) {
	name, _ := writeLines(t, 0, false)
	tree, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if !tree.IsEmpty() {
		t.Fatalf("expected empty treap, got %d lines", tree.Len())
	}
}

func TestLoadRejectsDirectory(t *testing.T) {
	if _, err := Load(t.TempDir()); err == nil {
		t.Fatalf("expected directory to be rejected")
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatalf("expected missing file to be rejected")
	}
}

func TestLoaderPublishesProgress(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "itreap")
	defer teardown()
	//
	name, lines := writeLines(t, 1000, true)
	loader := NewLoader(itreap.Config{BlockSize: 100})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ch, ok := loader.Progress(ctx)
	if !ok {
		t.Fatalf("cannot subscribe to loader progress")
	}
	received := make(chan []Progress)
	go func() {
		var msgs []Progress
		defer func() { received <- msgs }()
		for {
			select {
			case m, ok := <-ch:
				if !ok {
					return
				}
				msgs = append(msgs, m.(Progress))
			case <-ctx.Done():
				return
			}
		}
	}()
	tree, err := loader.Load(name)
	if err != nil {
		t.Fatal(err)
	}
	if tree.Len() != len(lines) {
		t.Fatalf("expected %d lines, got %d", len(lines), tree.Len())
	}
	msgs := <-received
	t.Logf("received %d progress messages", len(msgs))
	prev := 0
	for _, m := range msgs {
		if m.Err != nil || m.Path != name {
			t.Errorf("unexpected progress message %+v", m)
		}
		if m.Lines < prev || m.Lines > len(lines) {
			t.Errorf("progress not monotonic: %d after %d", m.Lines, prev)
		}
		if m.Done && m.Lines != len(lines) {
			t.Errorf("final message reports %d lines", m.Lines)
		}
		prev = m.Lines
	}
	if _, err := loader.Load(name); !errors.Is(err, ErrLoaderUsed) {
		t.Errorf("expected ErrLoaderUsed, got %v", err)
	}
}
