/*
Package textbuf provides a text editing buffer addressed by grapheme clusters.

A Buffer stores one user-perceived character (grapheme cluster, as defined by
Unicode UAX #29) per element of an indexed treap. Positions therefore count
characters as a reader would, not bytes or runes, and inserting into the
middle of a long text costs O(log(n/B)+B).

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textbuf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'itreap'
func tracer() tracing.Trace {
	return tracing.Select("itreap")
}
