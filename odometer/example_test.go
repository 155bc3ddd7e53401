package odometer_test

import (
	"fmt"

	"github.com/promptcomb/promptcomb/odometer"
)

// ExampleDecode resolves one composition ID over a 4x3 space. The "size"
// dimension sits last, so it is the fastest wheel.
func ExampleDecode() {
	dims := odometer.Dims{
		{ID: "tone", Card: 4},
		{ID: "size", Card: 3},
	}

	vec, err := odometer.Decode(5, dims)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("tone=%d size=%d\n", vec["tone"], vec["size"])
	// Output:
	// tone=1 size=2
}

// ExampleEncode shows the inverse mapping and ID normalization: the wheels
// wrap one full period every Total(dims) steps.
func ExampleEncode() {
	dims := odometer.Dims{
		{ID: "tone", Card: 4},
		{ID: "size", Card: 3},
	}

	id, _ := odometer.Encode(odometer.Vector{"tone": 1, "size": 2}, dims)
	total, _ := odometer.Total(dims)
	wrapped, _ := odometer.Normalize(id+total, dims)

	fmt.Println("id:", id)
	fmt.Println("total:", total)
	fmt.Println("one period later:", wrapped)
	// Output:
	// id: 5
	// total: 12
	// one period later: 5
}
