package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/sgrams/catalog"
)

// ExampleStructure_Resolve steps the 1/7 cycle of s4 once in each direction.
func ExampleStructure_Resolve() {
	s, _ := catalog.Get(3)
	fmt.Println(s)

	next, _ := s.Resolve("1/7", 1)
	prev, _ := s.Inform("1/7", 4)
	fmt.Println(next, prev)

	// Output:
	// 3 s4 [14] 3/9
	// 4 1
}

// ExampleStructure_AllPatterns lists both namespaces of s5.
func ExampleStructure_AllPatterns() {
	s, _ := catalog.Get(4)
	for _, p := range s.AllPatterns() {
		fmt.Printf("%-12s %s\n", p.Ref(), p.Cycle())
	}

	// Output:
	// 1/13         1 5 3 15 11 13
	// 2/13         2 10 7 14 6 9
	// 1/4          4 8 12
	// factor 1/4   4 12
	// factor 1/2   8
	// factor 1/1   16
}
