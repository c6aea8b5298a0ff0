package cycle_test

import (
	"fmt"

	"github.com/katalvlaran/sgrams/cycle"
)

// ExampleCycle_Next steps through the repeating digits of 1/7.
func ExampleCycle_Next() {
	c := cycle.MustNew([]int{1, 4, 2, 8, 5, 7})

	state := 1
	for i := 0; i < 6; i++ {
		state, _ = c.Next(state)
		fmt.Print(state, " ")
	}
	fmt.Println()

	// Output:
	// 4 2 8 5 7 1
}

// ExampleCycle_Distance measures how far 8 lies ahead of 1.
func ExampleCycle_Distance() {
	c := cycle.MustNew([]int{1, 4, 2, 8, 5, 7})
	d, _ := c.Distance(1, 8)
	fmt.Println(d)

	// Output:
	// 3
}
