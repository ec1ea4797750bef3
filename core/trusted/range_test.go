// File: core/trusted/range_test.go
// Author: momentics <momentics@gmail.com>

package trusted_test

import (
	"testing"

	"github.com/momentics/windex/api"
	"github.com/momentics/windex/core/trusted"
)

func TestSplitJoinReconstructs(t *testing.T) {
	c := trusted.New(make([]int, 8))
	r, _ := c.VetRange(api.Span{Start: 2, End: 7})

	for k := uint32(2); k <= 7; k++ {
		ix, err := c.VetEdge(k)
		if err != nil {
			t.Fatalf("VetEdge(%d): %v", k, err)
		}
		left, right, ok := r.SplitAt(ix)
		if !ok {
			t.Fatalf("SplitAt(%d) failed", k)
		}
		if left.Len()+right.Len() != r.Len() {
			t.Errorf("split lengths %d+%d != %d", left.Len(), right.Len(), r.Len())
		}
		back, ok := left.Join(right)
		if !ok || back.Span() != r.Span() {
			t.Errorf("join after split at %d = %v,%v, want %v", k, back.Span(), ok, r.Span())
		}
	}

	// outside [start,end]
	for _, k := range []uint32{0, 1, 8} {
		ix, _ := c.VetEdge(k)
		if _, _, ok := r.SplitAt(ix); ok {
			t.Errorf("SplitAt(%d) succeeded outside range", k)
		}
	}
}

func TestJoinRequiresNoGap(t *testing.T) {
	c := trusted.New(make([]int, 10))
	a, _ := c.VetRange(api.Span{Start: 0, End: 3})
	gap, _ := c.VetRange(api.Span{Start: 5, End: 8})
	touch, _ := c.VetRange(api.Span{Start: 3, End: 6})
	overlap, _ := c.VetRange(api.Span{Start: 2, End: 6})

	if _, ok := a.Join(gap); ok {
		t.Error("Join bridged a gap")
	}
	if j, ok := a.Join(touch); !ok || j.Span() != (api.Span{Start: 0, End: 6}) {
		t.Errorf("Join adjacent = %v,%v", j.Span(), ok)
	}
	if j, ok := a.Join(overlap); !ok || j.Span() != (api.Span{Start: 0, End: 6}) {
		t.Errorf("Join overlapping = %v,%v", j.Span(), ok)
	}
	// join is direction-agnostic for touching spans
	if j, ok := touch.Join(a); !ok || j.Span() != (api.Span{Start: 0, End: 6}) {
		t.Errorf("reverse Join = %v,%v", j.Span(), ok)
	}

	if jc, ok := a.JoinCover(gap); !ok || jc.Span() != (api.Span{Start: 0, End: 8}) {
		t.Errorf("JoinCover = %v,%v, want [0,8)", jc.Span(), ok)
	}
}

func TestJoinKeepsNonEmptyProof(t *testing.T) {
	c := trusted.New(make([]int, 6))
	r, _ := c.VetRange(api.Span{Start: 1, End: 4})
	ne, ok := r.NonEmpty()
	if !ok {
		t.Fatal("NonEmpty failed")
	}

	front, back := ne.Frontiers()
	if !front.IsEmpty() || !back.IsEmpty() {
		t.Fatalf("frontiers not empty: %v %v", front.Span(), back.Span())
	}
	if front.Start().Pos() != 1 || back.Start().Pos() != 4 {
		t.Errorf("frontiers at %d,%d, want 1,4", front.Start().Pos(), back.Start().Pos())
	}

	// NonEmpty + Unknown stays NonEmpty through Join and JoinCover
	j, ok := ne.Join(back)
	if !ok || j.Span() != r.Span() {
		t.Errorf("NonEmpty Join frontier = %v,%v, want %v", j.Span(), ok, r.Span())
	}
	j.First() // available without any further check

	jc, ok := ne.JoinCover(front)
	if !ok || jc.Span() != r.Span() {
		t.Errorf("NonEmpty JoinCover = %v,%v, want %v", jc.Span(), ok, r.Span())
	}

	// frontier joined with the nonempty range reconstructs it too
	if fj, ok := front.Join(r); !ok || fj.Span() != r.Span() {
		t.Errorf("frontier Join = %v,%v, want %v", fj.Span(), ok, r.Span())
	}
}

func TestExtendEnd(t *testing.T) {
	c := trusted.New(make([]int, 10))
	r, _ := c.VetRange(api.Span{Start: 2, End: 5})

	far, _ := c.VetEdge(9)
	e, ok := r.ExtendEnd(far)
	if !ok || e.Span() != (api.Span{Start: 2, End: 9}) {
		t.Errorf("ExtendEnd(9) = %v,%v", e.Span(), ok)
	}

	same, _ := c.VetEdge(5)
	if e, ok := r.ExtendEnd(same); !ok || e.Span() != r.Span() {
		t.Errorf("ExtendEnd(end) = %v,%v, want unchanged span", e.Span(), ok)
	}

	shrink, _ := c.VetEdge(3)
	if _, ok := r.ExtendEnd(shrink); ok {
		t.Error("ExtendEnd accepted a shrink")
	}

	ne, _ := r.NonEmpty()
	nee, ok := ne.ExtendEnd(far)
	if !ok {
		t.Fatal("NonEmpty ExtendEnd failed")
	}
	nee.First()
}

func TestForwardBackwardCursor(t *testing.T) {
	c := trusted.New(make([]int, 10))
	r, _ := c.VetRange(api.Span{Start: 2, End: 6})

	ix := r.Start()
	moves := 0
	for r.Forward(&ix, 1) {
		moves++
	}
	if moves != 4 || ix.Pos() != 6 {
		t.Errorf("forward walked %d to %d, want 4 to 6", moves, ix.Pos())
	}
	// repeated failed advances never move the cursor
	for i := 0; i < 3; i++ {
		if r.Forward(&ix, 1) {
			t.Fatal("Forward succeeded past end")
		}
	}
	if ix.Pos() != 6 {
		t.Errorf("failed Forward moved cursor to %d", ix.Pos())
	}

	if !r.Backward(&ix, 4) || ix.Pos() != 2 {
		t.Errorf("Backward(4) -> %d, want 2", ix.Pos())
	}
	if r.Backward(&ix, 1) {
		t.Error("Backward succeeded past start")
	}
	if ix.Pos() != 2 {
		t.Errorf("failed Backward moved cursor to %d", ix.Pos())
	}

	// multi-step that would overshoot is refused outright
	if r.Forward(&ix, 5) {
		t.Error("Forward(5) crossed the boundary")
	}
	if !r.Forward(&ix, 4) || ix.Pos() != 6 {
		t.Errorf("Forward(4) -> %d, want 6", ix.Pos())
	}
}

func TestNonEmptyAdvance(t *testing.T) {
	c := trusted.New([]int{0, 1, 2, 3, 4, 5})
	ne, ok := c.AsRange().NonEmpty()
	if !ok {
		t.Fatal("NonEmpty failed")
	}
	if v, _ := c.At(ne.First()); v != 0 {
		t.Errorf("First = %d, want 0", v)
	}
	steps := 0
	for ne.Advance() {
		steps++
	}
	if steps != 5 {
		t.Errorf("advanced %d times, want 5", steps)
	}
	if v, _ := c.At(ne.First()); v != 5 {
		t.Errorf("after advancing to end, First = %d, want 5", v)
	}
	if ne.Advance() {
		t.Error("Advance emptied the range")
	}
}

func TestContainsAndPromotion(t *testing.T) {
	c := trusted.New(make([]int, 6))
	r, _ := c.VetRange(api.Span{Start: 1, End: 4})

	for p := uint32(0); p <= 6; p++ {
		ix, err := c.VetEdge(p)
		if err != nil {
			t.Fatalf("VetEdge(%d): %v", p, err)
		}
		_, ok := r.Contains(ix)
		if want := p >= 1 && p < 4; ok != want {
			t.Errorf("Contains(%d) = %v, want %v", p, ok, want)
		}
		_, ok = ix.NonEmptyIn(c)
		if want := p < 6; ok != want {
			t.Errorf("NonEmptyIn(%d) = %v, want %v", p, ok, want)
		}
	}

	end := c.End()
	if _, ok := end.NonEmptyIn(c); ok {
		t.Error("end sentinel promoted to NonEmpty")
	}
}

func TestAfterStaysInBounds(t *testing.T) {
	c := trusted.New([]int{7})
	ix, _ := c.Vet(0)
	after := ix.After()
	if after.Pos() != 1 {
		t.Errorf("After = %d, want 1", after.Pos())
	}
	if _, err := c.VetEdge(after.Pos()); err != nil {
		t.Errorf("After left bounds: %v", err)
	}
	if _, ok := after.NonEmptyIn(c); ok {
		t.Error("one-past-the-end after promoted to NonEmpty")
	}
}

func TestEmptyRangeFastPaths(t *testing.T) {
	c := trusted.New([]int{})
	r := c.AsRange()
	if !r.IsEmpty() || r.Len() != 0 {
		t.Fatalf("empty container range = %v", r.Span())
	}
	if _, ok := r.NonEmpty(); ok {
		t.Error("empty range promoted")
	}
	left, right, ok := r.SplitAt(r.Start())
	if !ok || !left.IsEmpty() || !right.IsEmpty() {
		t.Errorf("degenerate split = %v %v %v", left.Span(), right.Span(), ok)
	}
}
