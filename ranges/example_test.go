package ranges_test

import (
	"fmt"

	"github.com/amp-labs/amp-ranges/codec"
	"github.com/amp-labs/amp-ranges/ranges"
)

func ExampleRange_Not() {
	booked := ranges.Closed(codec.Int, 10, 20)
	blocked := ranges.Closed(codec.Int, 12, 18)

	fmt.Println(booked.Not(blocked))
	// Output: [10...11], [19...20]
}

func ExampleRange_Or() {
	morning := ranges.Closed(codec.Int, 10, 20)
	afternoon := ranges.Closed(codec.Int, 21, 30)

	fmt.Println(morning.Or(afternoon))
	// Output: [10...30]
}

func ExampleCollection_Merge() {
	c, err := ranges.NewCollection(
		ranges.Closed(codec.Int, 1, 2),
		ranges.Closed(codec.Int, 3, 4),
		ranges.Closed(codec.Int, 2, 4),
		ranges.Closed(codec.Int, 2, 3),
		ranges.Closed(codec.Int, 5, 6),
		ranges.Closed(codec.Int, 7, 8),
		ranges.Closed(codec.Int, 6, 8),
		ranges.Closed(codec.Int, 6, 7),
	)
	if err != nil {
		panic(err)
	}

	fmt.Println(c)
	fmt.Println(c.MergeIntersecting())
	fmt.Println(c.Merge())
	// Output:
	// [1...2], [2...3], [2...4], [3...4], [5...6], [6...7], [6...8], [7...8]
	// [1...4], [5...8]
	// [1...8]
}
