package lambda_test

import (
	"fmt"
	"strings"

	"github.com/rogpeppe/arity/lambda"
	"github.com/rogpeppe/arity/tuple"
)

func ExampleFunc2_Curried() {
	add := lambda.Of2(func(x, y int) int { return x + y })
	addFive := add.Curried().Apply(5)
	fmt.Println(addFive.Apply(3))
	// Output:
	// 8
}

func ExampleFunc2_Tupled() {
	add := lambda.Of2(func(x, y int) int { return x + y })
	fmt.Println(add.Tupled().Apply(tuple.MkT2(3, 4)))
	// Output:
	// 7
}

func ExampleAndThen1() {
	double := lambda.Of1(func(x int) int { return x * 2 })
	fmt.Println(lambda.AndThen1(double, func(y int) int { return y + 1 }).Apply(5))
	// Output:
	// 11
}

func ExampleCompose() {
	shout := lambda.Of1(func(s string) string { return s + "!" })
	greet := lambda.Compose(shout, strings.ToUpper)
	fmt.Println(greet.Apply("hello"))
	// Output:
	// HELLO!
}

func ExampleFunc0_Curried() {
	answer := lambda.Of0(func() int { return 42 })
	fmt.Println(answer.Curried().Apply("ignored"))
	// Output:
	// 42
}
