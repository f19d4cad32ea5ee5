package itreap

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
)

func TestNewRejectsInvalidConfig(t *testing.T) {
	for _, size := range []int{-1, 1} {
		_, err := NewWithConfig[int](Config{BlockSize: size})
		if !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("block size %d: expected ErrInvalidConfig, got %v", size, err)
		}
	}
}

func TestNewNormalizesConfig(t *testing.T) {
	tree, err := NewWithConfig[int](Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tree.Config().BlockSize != DefaultBlockSize {
		t.Fatalf("expected default block size, got %d", tree.Config().BlockSize)
	}
}

func TestConfigFromConfiguration(t *testing.T) {
	conf := testconfig.Conf{
		ConfigKeyBlockSize: "16",
		ConfigKeySeed:      "4711",
	}
	cfg, err := ConfigFrom(conf)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.BlockSize != 16 {
		t.Fatalf("expected block size 16, got %d", cfg.BlockSize)
	}
	if cfg.Source == nil {
		t.Fatalf("expected seeded priority source")
	}
	if cfg, err = ConfigFrom(testconfig.Conf{}); err != nil || cfg.BlockSize != DefaultBlockSize {
		t.Fatalf("expected defaults for empty configuration, got %d, %v", cfg.BlockSize, err)
	}
	if _, err = ConfigFrom(testconfig.Conf{ConfigKeyBlockSize: "1"}); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestSeededConfigIsReproducible(t *testing.T) {
	conf := testconfig.Conf{
		ConfigKeyBlockSize: "4",
		ConfigKeySeed:      "99",
	}
	shape := func() []int {
		cfg, err := ConfigFrom(conf)
		if err != nil {
			t.Fatal(err)
		}
		tree, err := NewWithConfig[int](cfg)
		if err != nil {
			t.Fatal(err)
		}
		for i := range 200 {
			if _, err := tree.Insert(i/3, i); err != nil {
				t.Fatal(err)
			}
		}
		var sizes []int
		tree.walk(func(node treeNode[int], pos int, depth int) {
			sizes = append(sizes, node.Len(), depth)
		})
		return sizes
	}
	if !slices.Equal(shape(), shape()) {
		t.Fatalf("equal seeds resulted in different tree shapes")
	}
}

func TestUnseededConfigAllowsConcurrentTreaps(t *testing.T) {
	cfg := Config{BlockSize: 4}
	var wg sync.WaitGroup
	trees := make([]*ITreap[int], 4)
	for w := range trees {
		tree, err := NewWithConfig[int](cfg)
		if err != nil {
			t.Fatal(err)
		}
		trees[w] = tree
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 500 {
				tree.Insert(i/2, i)
			}
		}()
	}
	wg.Wait()
	for w, tree := range trees {
		if tree.Len() != 500 {
			t.Errorf("treap %d: expected 500 elements, got %d", w, tree.Len())
		}
		if err := tree.Check(); err != nil {
			t.Errorf("treap %d: %v", w, err)
		}
	}
}
