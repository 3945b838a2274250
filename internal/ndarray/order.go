package ndarray

// Order selects how a multi-index resolves to a linear offset.
type Order int

// Supported memory orders.
const (
	RowMajor    Order = iota // C order: last dimension varies fastest
	ColumnMajor              // Fortran order: first dimension varies fastest
)

// String returns "C" or "F".
func (o Order) String() string {
	if o == ColumnMajor {
		return "F"
	}
	return "C"
}

// orderOf maps a row-major flag to an Order.
func orderOf(rowMajor bool) Order {
	if rowMajor {
		return RowMajor
	}
	return ColumnMajor
}
