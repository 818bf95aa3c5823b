package lambda_test

import (
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/arity/internal/lambdatest"
	"github.com/rogpeppe/arity/lambda"
	"github.com/rogpeppe/arity/tuple"
)

var lawInputs = []int{-7, -1, 0, 1, 2, 5, 1000}

func TestLawAndThenAssociativity(t *testing.T) {
	f := lambda.Of2(func(a, b int) int { return a*3 + b })
	g := func(x int) int { return x - 4 }
	h := strconv.Itoa

	left := lambda.AndThen2(lambda.AndThen2(f, g), h)
	right := lambda.AndThen2(f, func(x int) string { return h(g(x)) })
	for _, a := range lawInputs {
		for _, b := range lawInputs {
			qt.Check(t, lambdatest.Agrees(
				func() string { return left.Apply(a, b) },
				func() string { return right.Apply(a, b) },
			))
		}
	}
}

func TestLawAndThenAppliesAfterResult(t *testing.T) {
	f := lambda.Of3(func(a, b, c int) int { return a - b - c })
	g := func(y int) int { return y * y }
	fg := lambda.AndThen3(f, g)
	for _, a := range lawInputs {
		qt.Check(t, qt.Equals(fg.Apply(a, 1, 2), g(f.Apply(a, 1, 2))))
	}
}

func TestLawIdentity(t *testing.T) {
	id := lambda.Identity[int]()
	f := lambda.Of1(func(x int) int { return x*x - 1 })
	for _, x := range lawInputs {
		qt.Check(t, qt.Equals(id.Apply(x), x))
		qt.Check(t, lambdatest.Agrees(
			func() int { return lambda.AndThen1(f, id).Apply(x) },
			func() int { return f.Apply(x) },
		))
		qt.Check(t, lambdatest.Agrees(
			func() int { return lambda.AndThen1(id, f).Apply(x) },
			func() int { return f.Apply(x) },
		))
		qt.Check(t, lambdatest.Agrees(
			func() int { return lambda.Compose(id, f).Apply(x) },
			func() int { return f.Apply(x) },
		))
		qt.Check(t, lambdatest.Agrees(
			func() int { return lambda.Compose(f, id).Apply(x) },
			func() int { return f.Apply(x) },
		))
	}

	// Identity works for any type, including ones that are not comparable.
	s := []string{"a"}
	qt.Assert(t, qt.DeepEquals(lambda.Identity[[]string]().Apply(s), s))
}

func TestLawComposeIsAndThenReversed(t *testing.T) {
	f := lambda.Of1(func(x int) int { return x + 10 })
	g := lambda.Of1(func(x int) int { return x * 10 })
	for _, x := range lawInputs {
		qt.Check(t, qt.Equals(lambda.Compose(f, g).Apply(x), lambda.AndThen1(g, f).Apply(x)))
	}
}

func TestLawCurriedAndTupledAgree(t *testing.T) {
	f := lambda.Of4(func(a, b, c, d int) int { return ((a*7+b)*7+c)*7 + d })
	for _, a := range lawInputs {
		for _, d := range lawInputs {
			want := func() int { return f.Apply(a, 2, 3, d) }
			qt.Check(t, lambdatest.Agrees(func() int {
				return f.Curried().Apply(a).Apply(2).Apply(3).Apply(d)
			}, want))
			qt.Check(t, lambdatest.Agrees(func() int {
				return f.Tupled().Apply(tuple.MkT4(a, 2, 3, d))
			}, want))
		}
	}
}
