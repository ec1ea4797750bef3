// File: highlevel/walker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Range partitioning built purely on the trusted derivation algebra. A
// Walker consumes vetted ranges and hands back disjoint, in-order
// subranges of bounded length; it never touches a container, so it can
// never introduce an unvetted position.

package highlevel

import (
	"github.com/eapache/queue"

	"github.com/momentics/windex/core/trusted"
	"github.com/momentics/windex/pool"
)

// worklists recycles FIFO queues across Walk calls.
var worklists = pool.NewSyncPool(func() *queue.Queue { return queue.New() })

// Walker splits vetted ranges into chunks of at most chunkLen positions.
type Walker struct {
	chunkLen uint32
}

// NewWalker creates a walker with the given maximum chunk length.
// A zero chunk length is treated as 1.
func NewWalker(chunkLen uint32) *Walker {
	if chunkLen == 0 {
		chunkLen = 1
	}
	return &Walker{chunkLen: chunkLen}
}

// Walk feeds every range through a FIFO worklist, emitting disjoint
// subranges of at most chunkLen positions in increasing order per input
// range. fn returning false stops the walk early. Oversized pieces are
// split with the pure cursor/split primitives and the tail re-queued.
func (w *Walker) Walk(fn func(trusted.Range) bool, ranges ...trusted.Range) {
	work := worklists.Get()
	defer func() {
		for work.Length() > 0 {
			work.Remove()
		}
		worklists.Put(work)
	}()

	for _, r := range ranges {
		work.Add(r)
	}
	for work.Length() > 0 {
		r := work.Remove().(trusted.Range)
		if r.Len() <= w.chunkLen {
			if r.IsEmpty() {
				continue
			}
			if !fn(r) {
				return
			}
			continue
		}
		cut := r.Start()
		if !r.Forward(&cut, w.chunkLen) {
			continue
		}
		head, tail, ok := r.SplitAt(cut)
		if !ok {
			continue
		}
		if !fn(head) {
			return
		}
		work.Add(tail)
	}
}

// Chunks collects the partition of r into a slice.
func (w *Walker) Chunks(r trusted.Range) []trusted.Range {
	var out []trusted.Range
	w.Walk(func(c trusted.Range) bool {
		out = append(out, c)
		return true
	}, r)
	return out
}
