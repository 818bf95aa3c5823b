package gen

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestNames(t *testing.T) {
	qt.Assert(t, qt.Equals(names("T", 1, 3), "T1, T2, T3"))
	qt.Assert(t, qt.Equals(names("t.A", 0, 2), "t.A0, t.A1"))
	qt.Assert(t, qt.Equals(names("T", 1, 0), ""))
}

func TestPairs(t *testing.T) {
	qt.Assert(t, qt.Equals(pairs("t", "T", 1, 2), "t1 T1, t2 T2"))
	qt.Assert(t, qt.Equals(pairs("a", "A", 0, 1), "a0 A0"))
	qt.Assert(t, qt.Equals(pairs("a", "A", 0, 0), ""))
}

func TestJoin(t *testing.T) {
	qt.Assert(t, qt.Equals(join("T1, T2", "R"), "T1, T2, R"))
	qt.Assert(t, qt.Equals(join("", "R"), "R"))
	qt.Assert(t, qt.Equals(join("", ""), ""))
}

func TestRepeat(t *testing.T) {
	qt.Assert(t, qt.Equals(repeat("int", 3), "int, int, int"))
	qt.Assert(t, qt.Equals(repeat("int", 1), "int"))
}

func TestCurried(t *testing.T) {
	qt.Assert(t, qt.Equals(curried("T", 1, 3, "R"), "Func1[T1, Func1[T2, Func1[T3, R]]]"))
	qt.Assert(t, qt.Equals(curried("T", 2, 2, "R"), "Func1[T2, R]"))
	qt.Assert(t, qt.Equals(curried("T", 2, 1, "R"), "R"))
}

func TestCount(t *testing.T) {
	qt.Assert(t, qt.Equals(count(0, "argument"), "no arguments"))
	qt.Assert(t, qt.Equals(count(1, "argument"), "1 argument"))
	qt.Assert(t, qt.Equals(count(13, "argument"), "13 arguments"))
}

func TestSeq(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(seq(3), []int{0, 1, 2}))
	qt.Assert(t, qt.HasLen(seq(0), 0))
}
