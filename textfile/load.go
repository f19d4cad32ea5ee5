package textfile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/itreap"
)

// maxLineLength is the longest line the loader accepts.
const maxLineLength = 1 << 20

// ErrLoaderUsed is returned if a loader is asked to load more than one file.
var ErrLoaderUsed = errors.New("textfile: loader has already been used")

// Progress is broadcast to subscribers of a Loader while a file is loaded.
type Progress struct {
	Path  string // file name
	Lines int    // number of lines read so far
	Size  int64  // total size of the file in bytes
	Done  bool   // set for the final message
	Err   error  // set if loading failed
}

// textFile represents an OS file which will be loaded as a treap of lines.
type textFile struct {
	path string      // file name
	info os.FileInfo // result from Stat(path)
	file *os.File    // file handle
}

// Loader reads a text file into an indexed treap of lines and publishes
// its progress. A Loader is good for loading a single file.
type Loader struct {
	cfg  itreap.Config
	cast *caster.Caster // broadcaster for load progress
	used bool
}

// NewLoader creates a loader which builds treaps with configuration cfg.
// Progress is published every cfg.BlockSize lines.
func NewLoader(cfg itreap.Config) *Loader {
	return &Loader{
		cfg:  cfg,
		cast: caster.New(context.Background()),
	}
}

// Progress subscribes to load progress. Messages are of type Progress; the
// channel is closed after the final message or when ctx is done. Delivery is
// best-effort: slow subscribers may miss intermediate messages.
func (l *Loader) Progress(ctx context.Context) (<-chan interface{}, bool) {
	return l.cast.Sub(ctx, 64)
}

// Load reads a file, which must be a UTF-8 text file, and returns its lines
// without line terminators.
func Load(name string) (*itreap.ITreap[string], error) {
	return NewLoader(itreap.DefaultConfig()).Load(name)
}

// Load reads a file, which must be a UTF-8 text file, and returns its lines
// without line terminators. Opening and reading the file is done
// synchronously, progress messages are published to subscribers while
// lines are read.
func (l *Loader) Load(name string) (*itreap.ITreap[string], error) {
	if l.used {
		return nil, ErrLoaderUsed
	}
	l.used = true
	defer l.cast.Close()
	tf, err := openFile(name)
	if err != nil {
		l.cast.Pub(Progress{Path: name, Done: true, Err: err})
		return nil, err
	}
	defer tf.file.Close()
	every := l.cfg.BlockSize
	if every <= 0 {
		every = itreap.DefaultBlockSize
	}
	lines := 0
	scanner := bufio.NewScanner(tf.file)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	seq := func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
			lines++
			if lines%every == 0 {
				l.cast.Pub(Progress{Path: tf.path, Lines: lines, Size: tf.info.Size()})
			}
		}
	}
	tree, err := itreap.BuildFromWithConfig(l.cfg, seq)
	if err == nil {
		err = scanner.Err()
	}
	if err != nil {
		err = fmt.Errorf("textfile: error loading %s: %w", tf.path, err)
		tracer().Errorf("%s", err.Error())
		l.cast.Pub(Progress{Path: tf.path, Lines: lines, Size: tf.info.Size(), Done: true, Err: err})
		return nil, err
	}
	tracer().Infof("textfile: loaded %d lines from %s", lines, tf.path)
	l.cast.Pub(Progress{Path: tf.path, Lines: lines, Size: tf.info.Size(), Done: true})
	return tree, nil
}

// openFile opens an OS file and collect some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("textfile: %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
	}, nil
}
