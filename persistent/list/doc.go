/*
Package list implements an immutable persistent list, an ordered sequence of comparable
values with value semantics.

Every “modification” of a list returns a new list, leaving the receiver and all lists
obtained earlier untouched and usable. New incarnations share all of the structure not
affected by an edit with their ancestors, thus operations cost time and space sub-linear
to a full copy:

	l := list.Of("x")
	l = l.Clear()                      // []
	l = l.Add("x").Add("z")            // [x z]
	l, _ = l.Set(0, "y")               // [y z]

Two lists are equal if they hold equal elements in the same order, no matter how
they have been built. The zero value of List is the empty list.

Lists may be read and derived from concurrently by any number of goroutines without
coordination; there is no mutable state to protect.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package list

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'fp.list'.
func tracer() tracing.Trace {
	return tracing.Select("fp.list")
}
