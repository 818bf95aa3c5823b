// Package tuple provides a collection of generic struct types
// that hold a specific number of values, from T0 up to T13.
//
// The members of a tuple are held in the fields A0, A1, ... in order,
// and can also be reached by position through the Tuple interface.
//
// See the tuple/tuplefunc package for a way to convert between
// multiple-argument functions and their single-argument equivalents.
package tuple

//go:generate go run ../internal/cmd/genarity -c ../genarity.yaml -t tuple
