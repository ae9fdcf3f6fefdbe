package wire

import (
	"encoding/binary"
	"math/big"
	"unicode/utf8"
)

// Tag names a wire encoding a format instruction applies.
type Tag int

const (
	// TagFixedBytes reads/writes exactly Width raw bytes.
	TagFixedBytes Tag = iota
	// TagUint8, TagUint16, TagUint32, TagUint64 read/write fixed-width
	// unsigned big-endian integers.
	TagUint8
	TagUint16
	TagUint32
	TagUint64
	// TagInt32 reads/writes a signed 32-bit big-endian integer.
	TagInt32
	// TagString reads/writes a 4-byte-length-prefixed UTF-8 string.
	TagString
	// TagBytes reads/writes a 4-byte-length-prefixed opaque blob.
	TagBytes
	// TagMPInt reads/writes a 4-byte-length-prefixed two's-complement
	// big-endian integer per RFC 4251.
	TagMPInt
)

// Field is one named entry in an ordered schema.
type Field struct {
	Name  string
	Tag   Tag
	Width int // meaningful only for TagFixedBytes
}

// Schema is an ordered list of fields. Reading and writing follow this
// order exactly; the backing storage for values is a map, but field order
// is always driven by the Schema, never by map iteration.
type Schema []Field

// Fixed builds a TagFixedBytes field of n bytes.
func Fixed(name string, n int) Field { return Field{Name: name, Tag: TagFixedBytes, Width: n} }

// Record holds field values read from, or destined for, a ByteStream,
// keyed by field name.
type Record map[string]any

// ReadFromFormatInstruction reads a single value for tag off s.
func ReadFromFormatInstruction(s *ByteStream, tag Tag, width int) (any, error) {
	switch tag {
	case TagFixedBytes:
		b, err := s.Read(width)
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(b))
		copy(out, b)
		return out, nil
	case TagUint8:
		b, err := s.Read(1)
		if err != nil {
			return nil, err
		}
		return b[0], nil
	case TagUint16:
		b, err := s.Read(2)
		if err != nil {
			return nil, err
		}
		return binary.BigEndian.Uint16(b), nil
	case TagUint32:
		b, err := s.Read(4)
		if err != nil {
			return nil, err
		}
		return binary.BigEndian.Uint32(b), nil
	case TagUint64:
		b, err := s.Read(8)
		if err != nil {
			return nil, err
		}
		return binary.BigEndian.Uint64(b), nil
	case TagInt32:
		b, err := s.Read(4)
		if err != nil {
			return nil, err
		}
		return int32(binary.BigEndian.Uint32(b)), nil
	case TagString:
		raw, err := readLengthPrefixed(s)
		if err != nil {
			return nil, err
		}
		if !utf8.Valid(raw) {
			return nil, NewDecodingError("invalid UTF-8 in STRING field")
		}
		return string(raw), nil
	case TagBytes:
		raw, err := readLengthPrefixed(s)
		if err != nil {
			return nil, err
		}
		out := make([]byte, len(raw))
		copy(out, raw)
		return out, nil
	case TagMPInt:
		raw, err := readLengthPrefixed(s)
		if err != nil {
			return nil, err
		}
		return mpintDecode(raw), nil
	default:
		return nil, NewFormatError("unknown format tag %d", tag)
	}
}

// WriteFromFormatInstruction writes value under tag to s.
func WriteFromFormatInstruction(s *ByteStream, tag Tag, width int, value any) error {
	switch tag {
	case TagFixedBytes:
		b, ok := value.([]byte)
		if !ok {
			return NewFormatError("field expects []byte, got %T", value)
		}
		if len(b) != width {
			return NewFormatError("fixed-width field expects %d bytes, got %d", width, len(b))
		}
		s.Write(b)
	case TagUint8:
		v, ok := toUint64(value)
		if !ok {
			return NewFormatError("field expects an unsigned integer, got %T", value)
		}
		s.Write([]byte{byte(v)})
	case TagUint16:
		v, ok := toUint64(value)
		if !ok {
			return NewFormatError("field expects an unsigned integer, got %T", value)
		}
		var b [2]byte
		binary.BigEndian.PutUint16(b[:], uint16(v))
		s.Write(b[:])
	case TagUint32:
		v, ok := toUint64(value)
		if !ok {
			return NewFormatError("field expects an unsigned integer, got %T", value)
		}
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(v))
		s.Write(b[:])
	case TagUint64:
		v, ok := toUint64(value)
		if !ok {
			return NewFormatError("field expects an unsigned integer, got %T", value)
		}
		var b [8]byte
		binary.BigEndian.PutUint64(b[:], v)
		s.Write(b[:])
	case TagInt32:
		v, ok := value.(int32)
		if !ok {
			return NewFormatError("field expects int32, got %T", value)
		}
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], uint32(v))
		s.Write(b[:])
	case TagString:
		v, ok := value.(string)
		if !ok {
			return NewFormatError("field expects string, got %T", value)
		}
		writeLengthPrefixed(s, []byte(v))
	case TagBytes:
		v, ok := value.([]byte)
		if !ok {
			return NewFormatError("field expects []byte, got %T", value)
		}
		writeLengthPrefixed(s, v)
	case TagMPInt:
		v, ok := value.(*big.Int)
		if !ok {
			return NewFormatError("field expects *big.Int, got %T", value)
		}
		writeLengthPrefixed(s, mpintEncode(v))
	default:
		return NewFormatError("unknown format tag %d", tag)
	}
	return nil
}

// ReadFromFormatInstructionsDict reads every field of schema, in order,
// into a Record.
func ReadFromFormatInstructionsDict(s *ByteStream, schema Schema) (Record, error) {
	rec := make(Record, len(schema))
	for _, f := range schema {
		v, err := ReadFromFormatInstruction(s, f.Tag, f.Width)
		if err != nil {
			return nil, err
		}
		rec[f.Name] = v
	}
	return rec, nil
}

// WriteFromFormatInstructionsDict writes every field of schema, in order,
// reading values from rec.
func WriteFromFormatInstructionsDict(s *ByteStream, schema Schema, rec Record) error {
	for _, f := range schema {
		if err := WriteFromFormatInstruction(s, f.Tag, f.Width, rec[f.Name]); err != nil {
			return err
		}
	}
	return nil
}

func readLengthPrefixed(s *ByteStream) ([]byte, error) {
	lenBytes, err := s.Read(4)
	if err != nil {
		return nil, err
	}
	length := binary.BigEndian.Uint32(lenBytes)
	return s.Read(int(length))
}

func writeLengthPrefixed(s *ByteStream, b []byte) {
	var lenBytes [4]byte
	binary.BigEndian.PutUint32(lenBytes[:], uint32(len(b)))
	s.Write(lenBytes[:])
	s.Write(b)
}

func toUint64(value any) (uint64, bool) {
	switch v := value.(type) {
	case uint8:
		return uint64(v), true
	case uint16:
		return uint64(v), true
	case uint32:
		return uint64(v), true
	case uint64:
		return v, true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}

// mpintDecode decodes an RFC 4251 two's-complement big-endian integer.
// An empty byte slice decodes to zero.
func mpintDecode(raw []byte) *big.Int {
	if len(raw) == 0 {
		return new(big.Int)
	}
	if raw[0]&0x80 == 0 {
		return new(big.Int).SetBytes(raw)
	}
	// Negative: two's complement. Invert and add one over the raw magnitude.
	inverted := make([]byte, len(raw))
	for i, b := range raw {
		inverted[i] = ^b
	}
	magnitude := new(big.Int).SetBytes(inverted)
	magnitude.Add(magnitude, big.NewInt(1))
	return magnitude.Neg(magnitude)
}

// mpintEncode encodes v as an RFC 4251 two's-complement big-endian integer,
// including the leading zero byte needed to keep a positive value whose
// top bit is set from being read back as negative.
func mpintEncode(v *big.Int) []byte {
	if v.Sign() == 0 {
		return nil
	}
	if v.Sign() > 0 {
		b := v.Bytes()
		if b[0]&0x80 != 0 {
			b = append([]byte{0}, b...)
		}
		return b
	}
	// Negative: encode the two's-complement representation of v.
	mag := new(big.Int).Neg(v)
	nBytes := mag.BitLen()/8 + 1
	if mag.BitLen()%8 == 0 && isPowerOfTwo(mag) {
		// mag == 2^(8k-1): its top bit alone already carries the sign,
		// so the minimal two's-complement form needs no extra byte.
		nBytes = mag.BitLen() / 8
	}
	b := mag.Bytes()
	for len(b) < nBytes {
		b = append([]byte{0}, b...)
	}
	twosComplement := make([]byte, len(b))
	carry := byte(1)
	for i := len(b) - 1; i >= 0; i-- {
		inverted := ^b[i]
		sum := uint16(inverted) + uint16(carry)
		twosComplement[i] = byte(sum)
		carry = byte(sum >> 8)
	}
	if twosComplement[0]&0x80 == 0 {
		twosComplement = append([]byte{0xff}, twosComplement...)
	}
	return twosComplement
}

// isPowerOfTwo reports whether mag (mag > 0) has exactly one bit set.
func isPowerOfTwo(mag *big.Int) bool {
	one := big.NewInt(1)
	and := new(big.Int).And(mag, new(big.Int).Sub(mag, one))
	return and.Sign() == 0
}
