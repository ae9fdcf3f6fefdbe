package osshkey

import "github.com/postalsys/osshkey/internal/wire"

// Format tags for the instruction interpreter (§4.1). Re-exported from
// internal/wire so internal/keytype and the root package share one
// definition without an import cycle between them.
const (
	TagFixedBytes = wire.TagFixedBytes
	TagUint8      = wire.TagUint8
	TagUint16     = wire.TagUint16
	TagUint32     = wire.TagUint32
	TagUint64     = wire.TagUint64
	TagInt32      = wire.TagInt32
	TagString     = wire.TagString
	TagBytes      = wire.TagBytes
	TagMPInt      = wire.TagMPInt
)

type (
	// Tag names a wire encoding a format instruction applies.
	Tag = wire.Tag
	// Field is one named entry in an ordered schema.
	Field = wire.Field
	// Schema is an ordered list of fields; reads/writes follow this order.
	Schema = wire.Schema
	// Record holds field values keyed by field name.
	Record = wire.Record
)

// Fixed builds a TagFixedBytes field of n bytes.
func Fixed(name string, n int) Field { return wire.Fixed(name, n) }

// ReadFromFormatInstruction reads a single value for tag off s.
func ReadFromFormatInstruction(s *ByteStream, tag Tag, width int) (any, error) {
	return wire.ReadFromFormatInstruction(s, tag, width)
}

// WriteFromFormatInstruction writes value under tag to s.
func WriteFromFormatInstruction(s *ByteStream, tag Tag, width int, value any) error {
	return wire.WriteFromFormatInstruction(s, tag, width, value)
}

// ReadFromFormatInstructionsDict reads every field of schema, in order,
// into a Record.
func ReadFromFormatInstructionsDict(s *ByteStream, schema Schema) (Record, error) {
	return wire.ReadFromFormatInstructionsDict(s, schema)
}

// WriteFromFormatInstructionsDict writes every field of schema, in order,
// reading values from rec.
func WriteFromFormatInstructionsDict(s *ByteStream, schema Schema, rec Record) error {
	return wire.WriteFromFormatInstructionsDict(s, schema, rec)
}
