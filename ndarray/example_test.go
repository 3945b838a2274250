// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray_test

import (
	"errors"
	"fmt"

	"github.com/born-ml/exdir/ndarray"
)

func Example() {
	data := make([]float64, 16)
	for i := range data {
		data[i] = float64(i + 1)
	}
	a, err := ndarray.New(data, ndarray.Shape{4, 4}, ndarray.RowMajor)
	if err != nil {
		fmt.Println(err)
		return
	}

	v, _ := a.At(1, 2)
	fmt.Println(v)

	_ = a.Reshape(ndarray.Shape{4, 2, 2})
	fmt.Println(a.Shape())

	err = a.Reshape(ndarray.Shape{3, 3})
	fmt.Println(errors.Is(err, ndarray.ErrShapeMismatch), a.Shape())
	// Output:
	// 7
	// [4 2 2]
	// true [4 2 2]
}

func ExampleAdd() {
	doubles, _ := ndarray.Full(ndarray.Shape{4}, 3.5, ndarray.RowMajor)
	ints, _ := ndarray.Full(ndarray.Shape{4}, int32(2), ndarray.RowMajor)

	if err := ndarray.Add(doubles, ints); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(doubles.Values())
	// Output:
	// [5.5 5.5 5.5 5.5]
}

func ExampleConvert() {
	c, _ := ndarray.FromSlice([]complex128{1.5 + 2i, -3 + 1i}, ndarray.Shape{2}, ndarray.RowMajor)
	fmt.Println(ndarray.Convert[int64](c).Values())
	// Output:
	// [1 -3]
}
