/*
Package textfile provides API helpers to load UTF-8 text files as indexed
treaps of lines.

Lines are read sequentially and handed to the linear-time bulk build of
package itreap, so loading never inserts lines one by one. Clients may
subscribe to load progress, which is broadcast while the file is read.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'itreap'
func tracer() tracing.Trace {
	return tracing.Select("itreap")
}
