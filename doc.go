/*
Package itreap implements an indexed treap, a sequence container with
random-access indexing and positional insertion in sub-linear time.

Indexed Treaps

An indexed treap organizes elements in a binary tree which is ordered by
position (an in-order walk yields the sequence) and heap-ordered by random
priorities (which bound the expected height, but never influence the order
of elements). Elements are not stored one per tree node. Instead, leaves hold
contiguous blocks of up to BlockSize elements, which keeps the tree small and
makes iteration cache friendly. A text editing buffer or a positional column
index are typical clients.

	Operation     |   ITreap            |  Slice
	--------------+---------------------+--------
	Index         |   O(log(n/B))       |   O(1)
	Insert        |   O(log(n/B)+B)     |   O(n)
	Push          |   O(log(n/B)+1)     |   O(1) amortized
	Iterate       |   O(n)              |   O(n)
	Range [i,j)   |   O(log(n/B)+j-i)   |   O(j-i)
	Build         |   O(n)              |   O(n)

Leaves are split when an insertion would overflow them. The new inner node
gets a random priority and is rotated upwards as long as it outranks its
parent. Building from a sequence in one go (see BuildFrom) creates a
perfectly shape-balanced tree in linear time.

There is no deletion, and there are no structural operations like
concatenation or splitting. ITreaps are not safe for concurrent mutation;
clients have to provide external synchronization if readers and writers
share an instance.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package itreap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'itreap'
func tracer() tracing.Trace {
	return tracing.Select("itreap")
}

// ITreapError is an error type for the itreap module
type ITreapError string

func (e ITreapError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever a position is outside of the
// valid range of an ITreap.
const ErrIndexOutOfBounds = ITreapError("itreap: index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = ITreapError("itreap: illegal arguments")

// ErrInvalidConfig signals an invalid treap configuration.
const ErrInvalidConfig = ITreapError("itreap: invalid configuration")

// ErrInvalidTree is flagged by Check if the internal tree structure violates
// an invariant. Clients should never see it.
const ErrInvalidTree = ITreapError("itreap: invalid tree")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
