package arith_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/numkit/arith"
)

// ExampleRound rounds a long decimal for display.
func ExampleRound() {
	fmt.Println(arith.Round(0.123456789101112, 5))
	fmt.Println(arith.Round(0.5, 5))
	// Output:
	// 0.12346
	// 0.5
}

// ExampleArrange enumerates the sample points of a coarse grid.
func ExampleArrange() {
	fmt.Println(arith.Arrange(0, 2, 0.5))
	// Output:
	// [0 0.5 1 1.5]
}

// ExampleGCD shows both the regular and the ill-defined case.
func ExampleGCD() {
	g, _ := arith.GCD(50, 15)
	fmt.Println(g)

	_, err := arith.GCD(0, 0)
	fmt.Println(errors.Is(err, arith.ErrUndefinedInput))
	// Output:
	// 5
	// true
}
