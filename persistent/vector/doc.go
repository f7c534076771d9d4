/*
Package vector implements an immutable persistent vector, the storage engine underneath
persistent lists.

An immutable persistent vector has copy-on-write behaviour: Each “modification” of the vector
(insertion, replacement or deletion) creates a copy, leaving the original unmodified.
Under the hood, copy-on-write retains most of the memory held by the original, and creates
a new incarnation of parts of the structure only. Thus, most of the structure/memory
is shared between original and copy, transparently to clients.

Elements live in a wide and shallow trie of fixed-size chunks, plus a tail chunk which is
kept outside of the trie. Every leaf inside the trie is full, so the path to an element
is found by splitting its index into groups of bits, one group per level. Appending and
removing at the end operates on the tail most of the time; replacing an element copies
the nodes on the path from the root to its leaf (“path copying”) and shares everything
else.

Immutable vectors are inherently concurrency-safe. Nodes are never changed after they
have become reachable from a vector handed out to a client.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.vector'.
func tracer() tracing.Trace {
	return tracing.Select("fp.vector")
}
