// Package tuplefunc provides functions that convert between multiple-argument
// functions and single-argument functions that take all their arguments
// as a single tuple. This makes it trivial to pass arbitrary functions to generic
// operations that are designed to operate on single-argument functions.
//
// For functions with as many argument parameters as can be represented by
// the tuple package, this package provides a function to convert to and from those
// forms.
//
// The names of the functions in this package match the following regular expression:
//
// 	(To|From)A_[0-9]+
//
// The number is the number of argument parameters of the multiple-argument form.
//
// So, for example:
//
// 	ToA_3
//
// converts from (for some types A0, A1, A2 and R)
//
// 	func(A0, A1, A2) R
//
// to:
//
// 	func(tuple.T3[A0, A1, A2]) R
//
// and FromA_3 converts back again. Neither direction calls the function
// it is given; the result calls it exactly once each time it is called.
package tuplefunc

//go:generate go run ../../internal/cmd/genarity -c ../../genarity.yaml -t tuplefunc
