// File: facade/windex.go
// Unified entry points for the windex library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// The facade mirrors the upstream scope idiom: construct a branded
// container around an existing sequence and hand it to a callback. The
// callback is the container's natural lifetime; handles vetted inside it
// become dangling-but-inert once the container is unreachable, since no
// other container will ever match their token.

package facade

import "github.com/momentics/windex/core/trusted"

// Scope brands items and runs f with the container.
func Scope[T any](items []T, f func(*trusted.Container[T])) {
	f(trusted.New(items))
}

// ScopeGrowable brands items as an append-only growable container and
// runs f with it.
func ScopeGrowable[T any](items []T, f func(*trusted.Growable[T])) {
	f(trusted.NewGrowable(items))
}

// ScopeText brands s and runs f with the text container. The error is
// the UTF-8 validation failure from construction, if any; f does not run
// on invalid input.
func ScopeText(s string, f func(*trusted.Text)) error {
	t, err := trusted.NewText(s)
	if err != nil {
		return err
	}
	f(t)
	return nil
}
