// File: facade/windex_test.go
// Author: momentics <momentics@gmail.com>

package facade_test

import (
	"errors"
	"testing"

	"github.com/momentics/windex/api"
	"github.com/momentics/windex/core/trusted"
	"github.com/momentics/windex/facade"
)

func TestScope(t *testing.T) {
	ran := false
	facade.Scope([]int{1, 2, 3}, func(c *trusted.Container[int]) {
		ran = true
		ix, err := c.Vet(2)
		if err != nil {
			t.Fatalf("Vet: %v", err)
		}
		if v, _ := c.At(ix); v != 3 {
			t.Errorf("At = %d, want 3", v)
		}
	})
	if !ran {
		t.Fatal("callback did not run")
	}
}

func TestScopeGrowable(t *testing.T) {
	facade.ScopeGrowable([]int(nil), func(g *trusted.Growable[int]) {
		ix := g.Push(42)
		if v, _ := g.At(ix); v != 42 {
			t.Errorf("At(pushed) = %d, want 42", v)
		}
	})
}

func TestScopeText(t *testing.T) {
	err := facade.ScopeText("héllo", func(txt *trusted.Text) {
		if _, err := txt.Vet(2); err == nil {
			t.Error("Vet(2) accepted a continuation byte")
		}
	})
	if err != nil {
		t.Fatalf("ScopeText: %v", err)
	}

	err = facade.ScopeText("bad\xff", func(*trusted.Text) {
		t.Fatal("callback ran on invalid UTF-8")
	})
	if !errors.Is(err, &api.IndexError{Code: api.CodeNotBoundary}) {
		t.Errorf("ScopeText(invalid) = %v, want not-a-boundary", err)
	}
}
