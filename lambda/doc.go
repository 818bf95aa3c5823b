// Package lambda provides function values of fixed arity, from Func0
// (no arguments) up to Func13, together with the transformations
// that can be applied to them mechanically.
//
// A FuncN is an ordinary Go function type, so a function value is made
// by conversion or by calling OfN, which infers the type parameters:
//
//	add := lambda.Of2(func(x, y int) int { return x + y })
//
// Each FuncN implements LambdaN, which provides:
//
//	Apply    call the function with exactly N arguments
//	Arity    return N
//	Curried  return an equivalent chain of N unary functions
//	Tupled   return an equivalent unary function over a tuple.TN
//
// For example, all of the following return 7:
//
//	add.Apply(3, 4)
//	add.Curried().Apply(3).Apply(4)
//	add.Tupled().Apply(tuple.MkT2(3, 4))
//
// Go methods cannot declare their own type parameters, so
// post-composition is provided by the functions AndThen0 to AndThen13
// and, for unary functions, pre-composition by Compose.
//
// None of the transformations changes the value it is applied to, and
// none of them calls the underlying function: the function runs only
// when the transformed value is finally applied. A panic raised by the
// underlying function propagates unchanged through every transformed
// form. Passing a nil function to AndThenN or Compose panics at once
// with a *precond.UnsatisfiedRequirementError.
//
// Function values hold no state of their own, so they are safe to share
// between goroutines if the underlying functions are.
package lambda

//go:generate go run ../internal/cmd/genarity -c ../genarity.yaml -t lambda
