package npy

import "fmt"

// DType is the closed set of element kinds the codec understands.
type DType int

// Supported data types.
const (
	Int8 DType = iota
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64
	Complex64
	Complex128
	Char
)

// dtypeInfo holds the fixed properties of a DType.
type dtypeInfo struct {
	name  string
	descr string // type code + width, without byte order marker
	size  int
	swap  int // byte-swap unit
}

var dtypeTable = [...]dtypeInfo{
	Int8:       {"int8", "i1", 1, 1},
	Int16:      {"int16", "i2", 2, 2},
	Int32:      {"int32", "i4", 4, 4},
	Int64:      {"int64", "i8", 8, 8},
	Uint8:      {"uint8", "u1", 1, 1},
	Uint16:     {"uint16", "u2", 2, 2},
	Uint32:     {"uint32", "u4", 4, 4},
	Uint64:     {"uint64", "u8", 8, 8},
	Float32:    {"float32", "f4", 4, 4},
	Float64:    {"float64", "f8", 8, 8},
	Complex64:  {"complex64", "c8", 8, 4},
	Complex128: {"complex128", "c16", 16, 8},
	Char:       {"char", "b1", 1, 1},
}

// descrTable is the inverse of dtypeTable's descr column.
var descrTable = func() map[string]DType {
	m := make(map[string]DType, len(dtypeTable))
	for dt, info := range dtypeTable {
		m[info.descr] = DType(dt)
	}
	return m
}()

// DTypes returns every supported data type.
func DTypes() []DType {
	out := make([]DType, len(dtypeTable))
	for i := range dtypeTable {
		out[i] = DType(i)
	}
	return out
}

// Valid reports whether dt is one of the supported data types.
func (dt DType) Valid() bool {
	return dt >= 0 && int(dt) < len(dtypeTable)
}

// Size returns the byte size of one element.
func (dt DType) Size() int {
	if !dt.Valid() {
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
	return dtypeTable[dt].size
}

// SwapWidth returns the unit in which element bytes are reversed when the
// byte order changes. Complex kinds swap each component separately.
func (dt DType) SwapWidth() int {
	if !dt.Valid() {
		panic(fmt.Sprintf("unknown data type %d", int(dt)))
	}
	return dtypeTable[dt].swap
}

// Descr returns the type code and width (e.g. "f8") without a byte order marker.
func (dt DType) Descr() string {
	if !dt.Valid() {
		return "unknown"
	}
	return dtypeTable[dt].descr
}

// String returns a human-readable name for the data type.
func (dt DType) String() string {
	if !dt.Valid() {
		return "unknown"
	}
	return dtypeTable[dt].name
}

// IsInteger reports whether dt is an integer or character kind.
func (dt DType) IsInteger() bool {
	switch dt {
	case Int8, Int16, Int32, Int64, Uint8, Uint16, Uint32, Uint64, Char:
		return true
	default:
		return false
	}
}

// IsComplex reports whether dt is a complex kind.
func (dt DType) IsComplex() bool {
	return dt == Complex64 || dt == Complex128
}

// ParseDescr maps a type code and width (e.g. "i4") to a DType.
func ParseDescr(descr string) (DType, error) {
	dt, ok := descrTable[descr]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedType, descr)
	}
	return dt, nil
}
