package itreap

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func collect[C any](it *Iterator[C]) []C {
	var out []C
	for it.Next() {
		out = append(out, it.Value())
	}
	return out
}

func TestBetweenLiteral(t *testing.T) {
	tree := BuildFrom(func(yield func(int) bool) {
		for x := range 10 {
			if !yield(x * 2) {
				return
			}
		}
	})
	it, err := tree.Between(1, 4)
	if err != nil {
		t.Fatalf("Between failed: %v", err)
	}
	if got, want := collect(it), []int{2, 4, 6}; !slices.Equal(got, want) {
		t.Fatalf("unexpected range: got %v want %v", got, want)
	}
}

func TestBetweenAllRanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "itreap")
	defer teardown()
	//
	tree := smallTreap(t, 4)
	model := make([]int, 0, 45)
	for i := range 45 {
		at := (i * 7) % (len(model) + 1)
		if _, err := tree.Insert(at, i); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}
		model = slices.Insert(model, at, i)
	}
	for lo := 0; lo <= tree.Len(); lo++ {
		for hi := lo; hi <= tree.Len(); hi++ {
			it, err := tree.Between(lo, hi)
			if err != nil {
				t.Fatalf("Between(%d, %d) failed: %v", lo, hi, err)
			}
			got := collect(it)
			if want := model[lo:hi]; !slices.Equal(got, want) {
				t.Fatalf("Between(%d, %d): got %v want %v", lo, hi, got, want)
			}
		}
	}
}

func TestBetweenOnBuiltTreap(t *testing.T) {
	input := make([]int, 1234)
	for i := range input {
		input[i] = i
	}
	tree, err := BuildFromWithConfig(Config{BlockSize: 10}, slices.Values(input))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	for _, r := range [][2]int{{0, 0}, {0, 1}, {4, 5}, {5, 6}, {3, 17}, {500, 1234}, {1233, 1234}, {0, 1234}} {
		it, err := tree.Between(r[0], r[1])
		if err != nil {
			t.Fatalf("Between(%d, %d) failed: %v", r[0], r[1], err)
		}
		if got, want := collect(it), input[r[0]:r[1]]; !slices.Equal(got, want) {
			t.Fatalf("Between(%d, %d): got %d elements, want %d", r[0], r[1], len(got), len(want))
		}
	}
}

func TestBetweenIllegalRanges(t *testing.T) {
	tree := FromSlice([]int{1, 2, 3})
	for _, r := range [][2]int{{-1, 2}, {0, 4}, {2, 1}, {4, 4}} {
		if _, err := tree.Between(r[0], r[1]); !errors.Is(err, ErrIllegalArguments) {
			t.Errorf("Between(%d, %d): expected ErrIllegalArguments, got %v", r[0], r[1], err)
		}
	}
}

func TestIterEmpty(t *testing.T) {
	tree := New[int]()
	it := tree.Iter()
	if it.Next() {
		t.Fatalf("expected empty iteration")
	}
	it, err := FromSlice([]int{1, 2}).Between(1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if it.Next() {
		t.Fatalf("expected empty range to yield nothing")
	}
}

func TestIteratorIsNotRestartable(t *testing.T) {
	tree := FromSlice([]string{"a", "b", "c"})
	it := tree.Iter()
	first := slices.Collect(it.Seq())
	if !slices.Equal(first, []string{"a", "b", "c"}) {
		t.Fatalf("unexpected iteration: %v", first)
	}
	if it.Next() {
		t.Fatalf("exhausted iterator yields again")
	}
	if again := slices.Collect(it.Seq()); len(again) != 0 {
		t.Fatalf("exhausted iterator yields %v", again)
	}
}

func TestIteratorRefModifiesElements(t *testing.T) {
	tree := smallTreap(t, 4)
	for i := range 20 {
		tree.Push(i)
	}
	it, err := tree.Between(5, 15)
	if err != nil {
		t.Fatal(err)
	}
	for it.Next() {
		*it.Ref() *= 10
	}
	for i, v := range tree.All() {
		want := i
		if i >= 5 && i < 15 {
			want = i * 10
		}
		if v != want {
			t.Fatalf("position %d: got %d want %d", i, v, want)
		}
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := FromSlice([]int{0, 1, 2, 3, 4, 5})
	count := 0
	for i := range tree.All() {
		if i == 3 {
			break
		}
		count++
	}
	if count != 3 {
		t.Fatalf("expected 3 iterations, got %d", count)
	}
}
