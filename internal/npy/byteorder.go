package npy

import (
	"fmt"

	"golang.org/x/sys/cpu"
)

// ByteOrder is the byte order marker of a descriptor string.
type ByteOrder byte

// Byte order markers as they appear in the header.
const (
	LittleEndian  ByteOrder = '<'
	BigEndian     ByteOrder = '>'
	NativeOrder   ByteOrder = '='
	NotApplicable ByteOrder = '|'
)

// HostOrder returns the byte order of the running machine.
func HostOrder() ByteOrder {
	if cpu.IsBigEndian {
		return BigEndian
	}
	return LittleEndian
}

// Resolve maps '=' and '|' to the host order. ParseHeader accepts '|' only
// for single byte kinds.
func (o ByteOrder) Resolve() ByteOrder {
	switch o {
	case NativeOrder, NotApplicable:
		return HostOrder()
	default:
		return o
	}
}

// Valid reports whether o is a known marker.
func (o ByteOrder) Valid() bool {
	switch o {
	case LittleEndian, BigEndian, NativeOrder, NotApplicable:
		return true
	default:
		return false
	}
}

// String returns the marker as a string.
func (o ByteOrder) String() string {
	return string(o)
}

// SwapBytes reverses the byte order of every width-sized unit in data, in place.
// Width 1 is a no-op. Applying SwapBytes twice restores the original bytes.
func SwapBytes(data []byte, width int) error {
	if width == 1 {
		return nil
	}
	if len(data)%width != 0 {
		return fmt.Errorf("swap bytes: buffer length %d is not a multiple of %d", len(data), width)
	}
	switch width {
	case 2:
		for i := 0; i < len(data); i += 2 {
			swap2(data[i : i+2])
		}
	case 4:
		for i := 0; i < len(data); i += 4 {
			swap4(data[i : i+4])
		}
	case 8:
		for i := 0; i < len(data); i += 8 {
			swap8(data[i : i+8])
		}
	case 16:
		for i := 0; i < len(data); i += 16 {
			swap16(data[i : i+16])
		}
	default:
		return fmt.Errorf("swap bytes: unsupported width %d", width)
	}
	return nil
}

func swap2(b []byte) {
	b[0], b[1] = b[1], b[0]
}

func swap4(b []byte) {
	b[0], b[1], b[2], b[3] = b[3], b[2], b[1], b[0]
}

func swap8(b []byte) {
	b[0], b[7] = b[7], b[0]
	b[1], b[6] = b[6], b[1]
	b[2], b[5] = b[5], b[2]
	b[3], b[4] = b[4], b[3]
}

func swap16(b []byte) {
	for i, j := 0, 15; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
