// Package ndarray implements a generic, shape-aware numeric array with
// row-major (C) or column-major (Fortran) index resolution.
//
// An Array[T] exclusively owns a flat buffer of T, a Shape and an Order.
// The product of the shape always equals the buffer length; operations that
// would break this fail without modifying the array.
//
// Arrays persist to and from the .npy format through the npy codec:
//
//	a, err := ndarray.FromSlice([]int64{1, 2, 3, 4, 5, 6}, ndarray.Shape{2, 3}, ndarray.RowMajor)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	v, _ := a.At(1, 2) // 6
//	if err := a.Save("data.npy"); err != nil {
//	    log.Fatal(err)
//	}
//
//	b, err := ndarray.Load[int64]("data.npy")
package ndarray
