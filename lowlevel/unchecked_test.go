// File: lowlevel/unchecked_test.go
// Author: momentics <momentics@gmail.com>

package lowlevel_test

import (
	"testing"

	"github.com/momentics/windex/lowlevel"
)

func TestElem(t *testing.T) {
	s := []int{10, 20, 30, 40}
	for i := range s {
		if got := *lowlevel.Elem(s, uint32(i)); got != s[i] {
			t.Errorf("Elem(%d) = %d, want %d", i, got, s[i])
		}
	}
	*lowlevel.Elem(s, 2) = 99
	if s[2] != 99 {
		t.Errorf("write through Elem lost: %v", s)
	}
}

func TestSubSlice(t *testing.T) {
	s := []byte("abcdef")
	cases := []struct{ start, end uint32 }{
		{0, 6}, {0, 0}, {6, 6}, {2, 5}, {3, 3},
	}
	for _, tc := range cases {
		got := lowlevel.SubSlice(s, tc.start, tc.end)
		want := s[tc.start:tc.end]
		if string(got) != string(want) {
			t.Errorf("SubSlice(%d,%d) = %q, want %q", tc.start, tc.end, got, want)
		}
	}
	// the view aliases the original
	v := lowlevel.SubSlice(s, 1, 3)
	v[0] = 'X'
	if s[1] != 'X' {
		t.Error("SubSlice does not alias backing array")
	}
}

func TestSubString(t *testing.T) {
	s := "abcdef"
	for _, tc := range []struct{ start, end uint32 }{
		{0, 6}, {0, 0}, {6, 6}, {2, 5},
	} {
		if got := lowlevel.SubString(s, tc.start, tc.end); got != s[tc.start:tc.end] {
			t.Errorf("SubString(%d,%d) = %q, want %q", tc.start, tc.end, got, s[tc.start:tc.end])
		}
	}
}

func TestByte(t *testing.T) {
	s := "héllo"
	for i := 0; i < len(s); i++ {
		if got := lowlevel.Byte(s, uint32(i)); got != s[i] {
			t.Errorf("Byte(%d) = %#x, want %#x", i, got, s[i])
		}
	}
}
