package gen

import (
	"fmt"
	"strings"
	"text/template"
)

// funcs holds the helpers available to the templates. Each one builds a
// piece of a signature for a given arity, so that a single template body
// produces every arity.
var funcs = template.FuncMap{
	"seq":     seq,
	"add":     func(a, b int) int { return a + b },
	"names":   names,
	"pairs":   pairs,
	"join":    join,
	"repeat":  repeat,
	"curried": curried,
	"count":   count,
}

// seq returns the integers [0, n).
func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

// names returns n comma-separated identifiers made from prefix and a
// number counting up from start, for example "T1, T2, T3".
func names(prefix string, start, n int) string {
	ss := make([]string, n)
	for i := range ss {
		ss[i] = fmt.Sprint(prefix, start+i)
	}
	return strings.Join(ss, ", ")
}

// pairs is like names but returns name-type pairs suitable for a
// parameter list, for example "t1 T1, t2 T2".
func pairs(name, typ string, start, n int) string {
	ss := make([]string, n)
	for i := range ss {
		ss[i] = fmt.Sprintf("%s%d %s%d", name, start+i, typ, start+i)
	}
	return strings.Join(ss, ", ")
}

// join joins the non-empty elements of ss with ", ".
func join(ss ...string) string {
	var nonEmpty []string
	for _, s := range ss {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return strings.Join(nonEmpty, ", ")
}

// repeat returns s repeated n times, comma-separated.
func repeat(s string, n int) string {
	ss := make([]string, n)
	for i := range ss {
		ss[i] = s
	}
	return strings.Join(ss, ", ")
}

// curried returns the type of a chain of unary functions taking
// arguments of type prefix<start> through prefix<end> and returning
// result, for example "Func1[T1, Func1[T2, R]]". When start > end
// it returns result itself.
func curried(prefix string, start, end int, result string) string {
	t := result
	for i := end; i >= start; i-- {
		t = fmt.Sprintf("Func1[%s%d, %s]", prefix, i, t)
	}
	return t
}

// count describes n things, for example "no arguments", "1 argument"
// or "3 arguments".
func count(n int, what string) string {
	switch n {
	case 0:
		return "no " + what + "s"
	case 1:
		return "1 " + what
	}
	return fmt.Sprintf("%d %ss", n, what)
}
