package lambda

import "github.com/rogpeppe/arity/precond"

// Lambda is the part of the function value contract shared by all
// arities.
type Lambda interface {
	// Arity returns the number of arguments taken by the function.
	Arity() int
}

// Identity returns the unary function that returns its argument.
func Identity[T any]() Func1[T, T] {
	return func(t T) T {
		return t
	}
}

// Constant returns a unary function that ignores its argument
// and returns v.
func Constant[T, V any](v V) Func1[T, V] {
	return func(T) V {
		return v
	}
}

// Compose returns a function that passes its argument to before
// and calls f with the result. It panics if before is nil.
func Compose[V, T, R any](f Func1[T, R], before func(V) T) Func1[V, R] {
	precond.Require(before != nil, "lambda: before is nil")
	return func(v V) R {
		return f(before(v))
	}
}
