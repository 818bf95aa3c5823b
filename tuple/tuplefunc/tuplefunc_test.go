package tuplefunc_test

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/arity/internal/lambdatest"
	"github.com/rogpeppe/arity/tuple"
	"github.com/rogpeppe/arity/tuple/tuplefunc"
)

func TestToA(t *testing.T) {
	qt.Assert(t, qt.Equals(tuplefunc.ToA_0(func() int { return 1 })(tuple.MkT0()), 1))
	qt.Assert(t, qt.Equals(tuplefunc.ToA_1(func(a int) int { return -a })(tuple.MkT1(2)), -2))

	sub := tuplefunc.ToA_2(func(a, b int) int { return a - b })
	qt.Assert(t, qt.Equals(sub(tuple.MkT2(5, 3)), 2))

	f13 := tuplefunc.ToA_13(func(a, b, c, d, e, f, g, h, i, j, k, l, m int) string {
		return fmt.Sprint(a, b, c, d, e, f, g, h, i, j, k, l, m)
	})
	got := f13(tuple.MkT13(1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13))
	qt.Assert(t, qt.Equals(got, "1 2 3 4 5 6 7 8 9 10 11 12 13"))
}

func TestFromA(t *testing.T) {
	qt.Assert(t, qt.Equals(tuplefunc.FromA_0(func(tuple.T0) int { return 1 })(), 1))

	sum := tuplefunc.FromA_3(func(t tuple.T3[int, int, int]) int { return t.A0 + t.A1 + t.A2 })
	qt.Assert(t, qt.Equals(sum(1, 2, 3), 6))

	first := tuplefunc.FromA_2(func(t tuple.T2[string, bool]) string { return t.A0 })
	qt.Assert(t, qt.Equals(first("x", true), "x"))
}

func TestRoundTrip(t *testing.T) {
	var c lambdatest.Counter
	f := func(a string, b int) string {
		c.Inc()
		return fmt.Sprint(a, b)
	}
	g := tuplefunc.FromA_2(tuplefunc.ToA_2(f))
	qt.Assert(t, qt.Equals(c.N(), 0))
	qt.Assert(t, qt.Equals(g("a", 1), f("a", 1)))
	qt.Assert(t, qt.Equals(c.N(), 2))
}

func TestPanicsPropagate(t *testing.T) {
	f := func(a, b int) int { return a / b }
	tf := tuplefunc.ToA_2(f)
	qt.Assert(t, lambdatest.Agrees(
		func() int { return tf(tuple.MkT2(1, 0)) },
		func() int { return f(1, 0) },
	))
}
