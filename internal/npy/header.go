package npy

import (
	"strconv"
	"strings"
)

// Format constants.
const (
	Magic           = "\x93NUMPY"
	MagicSize       = 6
	HeaderAlignment = 64
	MaxHeaderSize   = 16 * 1024 * 1024 // 16MB - header sanity limit on read

	maxV1HeaderLen = 0xFFFF
)

// Format versions.
const (
	Version1 = 1 // 2-byte header length
	Version2 = 2 // 4-byte header length
	Version3 = 3 // 4-byte header length, utf-8 header text
)

// Header is the descriptor embedded in the header text of an npy file.
type Header struct {
	ByteOrder    ByteOrder
	DType        DType
	FortranOrder bool
	Shape        []int
}

// Descr returns the full descriptor string, e.g. "<f8".
func (h Header) Descr() string {
	return h.ByteOrder.String() + h.DType.Descr()
}

// NumElements returns the product of the shape entries (1 for an empty shape).
func (h Header) NumElements() int {
	n := 1
	for _, d := range h.Shape {
		n *= d
	}
	return n
}

// String returns the unpadded dict literal, e.g.
//
//	{'descr': '<f8', 'fortran_order': False, 'shape': (2,3,), }
func (h Header) String() string {
	var sb strings.Builder
	sb.WriteString("{'descr': '")
	sb.WriteString(h.Descr())
	sb.WriteString("', 'fortran_order': ")
	if h.FortranOrder {
		sb.WriteString("True")
	} else {
		sb.WriteString("False")
	}
	sb.WriteString(", 'shape': (")
	for _, d := range h.Shape {
		sb.WriteString(strconv.Itoa(d))
		sb.WriteByte(',')
	}
	sb.WriteString("), }")
	return sb.String()
}

// encodePrefix builds everything that precedes the element data: magic,
// version, length field and the padded header text. It picks version 1 when
// the padded header length fits in 16 bits and version 2 otherwise.
func encodePrefix(h Header) []byte {
	text := h.String()

	major := byte(Version1)
	lenSize := 2
	hlen := paddedHeaderLen(len(text), MagicSize+2+lenSize)
	if hlen > maxV1HeaderLen {
		major = Version2
		lenSize = 4
		hlen = paddedHeaderLen(len(text), MagicSize+2+lenSize)
	}

	prefixSize := MagicSize + 2 + lenSize
	buf := make([]byte, 0, prefixSize+hlen)
	buf = append(buf, Magic...)
	buf = append(buf, major, 0)
	if lenSize == 2 {
		buf = append(buf, byte(hlen), byte(hlen>>8))
	} else {
		buf = append(buf, byte(hlen), byte(hlen>>8), byte(hlen>>16), byte(hlen>>24))
	}
	buf = append(buf, text...)
	for len(buf) < prefixSize+hlen-1 {
		buf = append(buf, ' ')
	}
	buf = append(buf, '\n')
	return buf
}

// paddedHeaderLen returns the header text length including space padding and
// the terminating newline, such that prefix+length is a multiple of 64.
func paddedHeaderLen(textLen, prefix int) int {
	total := prefix + textLen + 1
	pad := (HeaderAlignment - total%HeaderAlignment) % HeaderAlignment
	return textLen + pad + 1
}

// ParseHeader extracts the descriptor, order flag and shape from header text.
// Parsing is by substring search and tolerates extra whitespace.
func ParseHeader(text string) (Header, error) {
	var h Header

	descr, err := quotedValue(text, "'descr':")
	if err != nil {
		return Header{}, err
	}
	if len(descr) < 2 {
		return Header{}, formatErrorf("descr", "descriptor %q too short", descr)
	}
	h.ByteOrder = ByteOrder(descr[0])
	if !h.ByteOrder.Valid() {
		return Header{}, formatErrorf("descr", "unknown byte order marker %q in %q", descr[0], descr)
	}
	h.DType, err = ParseDescr(descr[1:])
	if err != nil {
		return Header{}, err
	}
	if h.ByteOrder == NotApplicable && h.DType.Size() > 1 {
		return Header{}, formatErrorf("descr", "byte order marker '|' in %q requires a single byte type", descr)
	}

	order, err := bareValue(text, "'fortran_order':")
	if err != nil {
		return Header{}, err
	}
	switch order {
	case "True":
		h.FortranOrder = true
	case "False":
		h.FortranOrder = false
	default:
		return Header{}, formatErrorf("fortran_order", "expected True or False, got %q", order)
	}

	h.Shape, err = parseShape(text)
	if err != nil {
		return Header{}, err
	}
	return h, nil
}

// quotedValue returns the single-quoted string following key.
func quotedValue(text, key string) (string, error) {
	field := strings.Trim(key, "':")
	i := strings.Index(text, key)
	if i < 0 {
		return "", formatErrorf(field, "key %s not found", key)
	}
	rest := strings.TrimLeft(text[i+len(key):], " ")
	if !strings.HasPrefix(rest, "'") {
		return "", formatErrorf(field, "value is not quoted")
	}
	rest = rest[1:]
	end := strings.IndexByte(rest, '\'')
	if end < 0 {
		return "", formatErrorf(field, "unterminated string")
	}
	return strings.ReplaceAll(rest[:end], " ", ""), nil
}

// bareValue returns the unquoted token following key, up to ',' or '}'.
func bareValue(text, key string) (string, error) {
	field := strings.Trim(key, "':")
	i := strings.Index(text, key)
	if i < 0 {
		return "", formatErrorf(field, "key %s not found", key)
	}
	rest := text[i+len(key):]
	end := strings.IndexAny(rest, ",}")
	if end < 0 {
		return "", formatErrorf(field, "unterminated value")
	}
	return strings.TrimSpace(rest[:end]), nil
}

// parseShape parses the parenthesized shape tuple. An empty tuple yields an
// empty shape.
func parseShape(text string) ([]int, error) {
	start := 0
	if i := strings.Index(text, "'shape':"); i >= 0 {
		start = i
	}
	open := strings.IndexByte(text[start:], '(')
	if open < 0 {
		return nil, formatErrorf("shape", "missing '('")
	}
	open += start
	closing := strings.IndexByte(text[open:], ')')
	if closing < 0 {
		return nil, formatErrorf("shape", "missing ')'")
	}
	closing += open

	shape := []int{}
	for _, part := range strings.Split(text[open+1:closing], ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		dim, err := strconv.Atoi(part)
		if err != nil {
			return nil, formatErrorf("shape", "invalid dimension %q", part)
		}
		if dim < 0 {
			return nil, formatErrorf("shape", "negative dimension %d", dim)
		}
		shape = append(shape, dim)
	}
	return shape, nil
}
