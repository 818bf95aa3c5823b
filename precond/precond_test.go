package precond_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogpeppe/arity/precond"
)

func requireUnsatisfied(t *testing.T, msg string, f func()) {
	t.Helper()
	err := precond.Catch(f)
	require.Error(t, err)

	var ure *precond.UnsatisfiedRequirementError
	require.True(t, errors.As(err, &ure))
	require.Equal(t, msg, ure.Msg)
}

func TestRequire(t *testing.T) {
	requireUnsatisfied(t, "false", func() {
		precond.Require(false, "false")
	})
	require.NotPanics(t, func() {
		precond.Require(true, "")
	})
}

func TestRequirefFormatsOnlyOnFailure(t *testing.T) {
	requireUnsatisfied(t, "want 1 got 2", func() {
		precond.Requiref(false, "want %d got %d", 1, 2)
	})

	formatted := false
	arg := stringer(func() string {
		formatted = true
		return ""
	})
	precond.Requiref(true, "%v", arg)
	assert.False(t, formatted)
}

type stringer func() string

func (s stringer) String() string { return s() }

func TestNonNil(t *testing.T) {
	x := new(int)
	require.Same(t, x, precond.NonNil(x))

	requireUnsatisfied(t, "value is nil", func() {
		precond.NonNil[*int](nil)
	})
	requireUnsatisfied(t, "null", func() {
		precond.NonNil[any](nil, "null")
	})
	requireUnsatisfied(t, "f is nil", func() {
		var f func(int) int
		precond.NonNil(f, "%s is nil", "f")
	})
	requireUnsatisfied(t, "value is nil", func() {
		var m map[string]int
		precond.NonNil(m)
	})

	// Values that cannot be nil always pass.
	require.Equal(t, 0, precond.NonNil(0))
	require.Equal(t, "", precond.NonNil(""))
}

func TestNotEmpty(t *testing.T) {
	requireUnsatisfied(t, "value is nil", func() {
		precond.NotEmpty[[]any](nil)
	})
	requireUnsatisfied(t, "slice is empty", func() {
		precond.NotEmpty([]any{})
	})
	requireUnsatisfied(t, "empty", func() {
		precond.NotEmpty([]any{}, "empty")
	})

	s := []any{nil}
	got := precond.NotEmpty(s)
	require.Len(t, got, 1)
	require.Same(t, &s[0], &got[0])
}

func TestNotEmptyString(t *testing.T) {
	requireUnsatisfied(t, "string is empty", func() {
		precond.NotEmptyString("")
	})
	requireUnsatisfied(t, "empty", func() {
		precond.NotEmptyString("", "empty")
	})
	require.Equal(t, " ", precond.NotEmptyString(" "))
}

func TestNotBlank(t *testing.T) {
	for _, s := range []string{"", " ", "\t\n"} {
		requireUnsatisfied(t, "string is empty", func() {
			precond.NotBlank(s)
		})
	}
	requireUnsatisfied(t, "empty", func() {
		precond.NotBlank(" ", "empty")
	})
	require.Equal(t, ".", precond.NotBlank("."))
}

func TestCatchPropagatesOtherPanics(t *testing.T) {
	assert.PanicsWithValue(t, "boom", func() {
		precond.Catch(func() {
			panic("boom")
		})
	})
	require.NoError(t, precond.Catch(func() {}))
}
