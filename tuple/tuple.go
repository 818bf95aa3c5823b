package tuple

import (
	"fmt"
	"strings"
)

// Tuple is implemented by all the tuple types in this package.
type Tuple interface {
	// Arity returns the number of members of the tuple.
	Arity() int

	// At returns the member at index i, counting from zero.
	// It panics if i is out of range.
	At(i int) any
}

// Values returns the members of t in order.
func Values(t Tuple) []any {
	vs := make([]any, t.Arity())
	for i := range vs {
		vs[i] = t.At(i)
	}
	return vs
}

func format(t Tuple) string {
	var b strings.Builder
	b.WriteByte('(')
	for i := 0; i < t.Arity(); i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, t.At(i))
	}
	b.WriteByte(')')
	return b.String()
}

func outOfRange(i, n int) string {
	return fmt.Sprintf("tuple: index %d out of range for %d-tuple", i, n)
}
