// Package precond provides checks for the preconditions of a call.
//
// A failed check panics with an *UnsatisfiedRequirementError. The panic
// signals a programming error in the caller, in the same way that an index
// out of range does, so the checks are meant to be used at the point where
// an argument is accepted rather than deep inside a computation.
//
// Functions that take msgAndArgs use the first element as a
// fmt.Sprintf format for the remaining elements. When msgAndArgs is empty
// a default message describing the failure is used.
package precond

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// UnsatisfiedRequirementError is the panic value used when a check fails.
type UnsatisfiedRequirementError struct {
	Msg string
}

func (e *UnsatisfiedRequirementError) Error() string {
	return e.Msg
}

// Require panics with msg when cond is false.
func Require(cond bool, msg string) {
	if !cond {
		fail(msg)
	}
}

// Requiref is like Require but only formats the message when cond is
// false.
func Requiref(cond bool, format string, args ...any) {
	if !cond {
		fail(fmt.Sprintf(format, args...))
	}
}

// NonNil returns v, panicking if it is nil. Nil pointers, funcs, maps,
// slices, channels and interfaces all count as nil.
func NonNil[T any](v T, msgAndArgs ...any) T {
	if isNil(v) {
		fail(message("value is nil", msgAndArgs))
	}
	return v
}

// NotEmpty returns s, panicking if it is nil or has no elements.
func NotEmpty[S ~[]E, E any](s S, msgAndArgs ...any) S {
	if s == nil {
		fail(message("value is nil", msgAndArgs))
	}
	if len(s) == 0 {
		fail(message("slice is empty", msgAndArgs))
	}
	return s
}

// NotEmptyString returns s, panicking if it is empty.
func NotEmptyString(s string, msgAndArgs ...any) string {
	if s == "" {
		fail(message("string is empty", msgAndArgs))
	}
	return s
}

// NotBlank returns s, panicking if it is empty once leading
// and trailing white space is removed.
func NotBlank(s string, msgAndArgs ...any) string {
	if strings.TrimSpace(s) == "" {
		fail(message("string is empty", msgAndArgs))
	}
	return s
}

// Catch calls f and returns the *UnsatisfiedRequirementError it panics
// with, if any. Any other panic is propagated.
func Catch(f func()) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if e, ok := r.(error); ok {
			var ure *UnsatisfiedRequirementError
			if errors.As(e, &ure) {
				err = ure
				return
			}
		}
		panic(r)
	}()
	f()
	return nil
}

func fail(msg string) {
	panic(&UnsatisfiedRequirementError{Msg: msg})
}

func message(def string, msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return def
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprint(msgAndArgs...)
	}
	if len(msgAndArgs) == 1 {
		return format
	}
	return fmt.Sprintf(format, msgAndArgs[1:]...)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Ptr, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
