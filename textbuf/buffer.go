package textbuf

import (
	"fmt"
	"iter"
	"strings"
	"sync"

	"github.com/npillmayer/itreap"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

var setupGraphemes sync.Once

// graphemes returns the grapheme clusters of s as a sequence.
// An empty s yields nothing; the segmenter must not see it.
func graphemes(s string) iter.Seq[string] {
	if s == "" {
		return func(func(string) bool) {}
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	gstr := grapheme.StringFromString(s)
	return func(yield func(string) bool) {
		for i := 0; i < gstr.Len(); i++ {
			if !yield(gstr.Nth(i)) {
				return
			}
		}
	}
}

// Buffer is a sequence of grapheme clusters.
//
// The zero value is not usable; create buffers with New or FromString.
type Buffer struct {
	text    *itreap.ITreap[string]
	context *uax11.Context
}

// New creates an empty buffer.
func New() *Buffer {
	return &Buffer{
		text:    itreap.New[string](),
		context: uax11.LatinContext,
	}
}

// FromString creates a buffer holding the grapheme clusters of s.
func FromString(s string) *Buffer {
	return &Buffer{
		text:    itreap.BuildFrom(graphemes(s)),
		context: uax11.LatinContext,
	}
}

// SetContext sets the context for display width calculations.
// A nil context resets it to uax11.LatinContext.
func (b *Buffer) SetContext(ctx *uax11.Context) {
	if ctx == nil {
		ctx = uax11.LatinContext
	}
	b.context = ctx
}

// Len returns the number of grapheme clusters in the buffer.
func (b *Buffer) Len() int {
	return b.text.Len()
}

// Grapheme returns the grapheme cluster at position i.
func (b *Buffer) Grapheme(i int) (string, error) {
	return b.text.At(i)
}

// Insert inserts the grapheme clusters of s at position pos.
//
// Grapheme clusters are not re-segmented across the insertion boundaries:
// inserting a combining mark after a base character results in an element
// of its own.
// Cost is O(k·(log(n/B)+B)) for k inserted grapheme clusters.
func (b *Buffer) Insert(pos int, s string) error {
	if pos < 0 || pos > b.Len() {
		return fmt.Errorf("%w: buffer position %d, length %d", itreap.ErrIndexOutOfBounds, pos, b.Len())
	}
	n := 0
	for g := range graphemes(s) {
		if _, err := b.text.Insert(pos+n, g); err != nil {
			return err
		}
		n++
	}
	tracer().Debugf("textbuf: inserted %d graphemes at %d", n, pos)
	return nil
}

// Append appends the grapheme clusters of s.
func (b *Buffer) Append(s string) {
	for g := range graphemes(s) {
		b.text.Push(g)
	}
}

// String returns the complete text of the buffer.
func (b *Buffer) String() string {
	var sb strings.Builder
	for g := range b.text.Values() {
		sb.WriteString(g)
	}
	return sb.String()
}

// Slice returns the text of the grapheme clusters in [from, to).
func (b *Buffer) Slice(from, to int) (string, error) {
	it, err := b.text.Between(from, to)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for it.Next() {
		sb.WriteString(it.Value())
	}
	return sb.String(), nil
}

// Width returns the display width of the grapheme clusters in [from, to),
// measured in en (i.e., fixed width positions).
func (b *Buffer) Width(from, to int) (int, error) {
	s, err := b.Slice(from, to)
	if err != nil {
		return 0, err
	}
	if s == "" {
		return 0, nil
	}
	return uax11.StringWidth(grapheme.StringFromString(s), b.context), nil
}
