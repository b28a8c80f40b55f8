// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"

	"github.com/katalvlaran/lvmath/vector"
)

func ExampleVector3_Length() {
	v := vector.NewVector3(3.0, 4.0, 0.0)
	fmt.Println(v.LengthSqr(), v.Length())
	// Output: 25 5
}

func ExampleVector3_Cross() {
	x := vector.NewVector3(1, 0, 0)
	y := vector.NewVector3(0, 1, 0)
	fmt.Println(x.Cross(y))
	// Output: (0, 0, 1)
}

func ExampleVector2_Dot() {
	fmt.Println(vector.NewVector2(1, 0).Dot(vector.NewVector2(0, 1)))
	// Output: 0
}

func ExampleVector3_AddAssign() {
	pos := vector.NewVector3(0.0, 1.0, 0.0)
	vel := vector.NewVector3(2.0, 0.0, -1.0)
	pos.AddAssign(vel.Scale(0.5))
	fmt.Println(pos)
	// Output: (1, 1, -0.5)
}
