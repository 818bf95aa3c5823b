// Package lambdatest provides test helpers for checking that two ways
// of calling a function behave the same.
package lambdatest

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
)

// Agrees returns a checker that calls got and want and succeeds when
// they are observationally equivalent: both return values that are
// equal according to cmp.Equal, or both panic with values of the same
// type and the same printed form.
func Agrees[T any](got, want func() T) qt.Checker {
	return &agreesChecker[T]{
		got:  got,
		want: want,
	}
}

type agreesChecker[T any] struct {
	got  func() T
	want func() T
}

func (c *agreesChecker[T]) Args() []qt.Arg {
	return []qt.Arg{{
		Name:  "got",
		Value: c.got,
	}, {
		Name:  "want",
		Value: c.want,
	}}
}

func (c *agreesChecker[T]) Check(note func(key string, value any)) error {
	got := call(c.got)
	want := call(c.want)
	switch {
	case got.panicked && want.panicked:
		if got.panicType() != want.panicType() || got.panicString() != want.panicString() {
			note("got panic", got.panicString())
			note("want panic", want.panicString())
			return errors.New("functions panicked differently")
		}
		return nil
	case got.panicked:
		note("got panic", got.panicString())
		note("want result", want.value)
		return errors.New("got panicked but want returned")
	case want.panicked:
		note("got result", got.value)
		note("want panic", want.panicString())
		return errors.New("got returned but want panicked")
	}
	if diff := cmp.Diff(want.value, got.value); diff != "" {
		note("diff (-want +got)", diff)
		return errors.New("results are not equal")
	}
	return nil
}

type outcome[T any] struct {
	value      T
	panicked   bool
	panicValue any
}

func (o outcome[T]) panicType() string {
	return fmt.Sprintf("%T", o.panicValue)
}

func (o outcome[T]) panicString() string {
	return fmt.Sprint(o.panicValue)
}

func call[T any](f func() T) (o outcome[T]) {
	returned := false
	defer func() {
		if !returned {
			o.panicked = true
			o.panicValue = recover()
		}
	}()
	o.value = f()
	returned = true
	return o
}

// Counter counts events, typically calls of a function under test.
// It is safe to use concurrently.
type Counter struct {
	n atomic.Int64
}

// Inc records one event.
func (c *Counter) Inc() {
	c.n.Add(1)
}

// N returns the number of events recorded so far.
func (c *Counter) N() int {
	return int(c.n.Load())
}

// Counted returns a function that records a call on c and then calls f.
func Counted[T, R any](c *Counter, f func(T) R) func(T) R {
	return func(t T) R {
		c.Inc()
		return f(t)
	}
}
