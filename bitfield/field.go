// Package bitfield implements the BitFieldGroup machinery: a generic,
// table-driven facility that turns a declaratively described Record of
// bit-width-constrained Fields into a serialized byte string in network
// byte order, the inverse parse, and a uniform field iterator for
// formatting.
//
// Each Record schema is modeled as data (an ordered []Field built by the
// Record's own Fields method) rather than generated via compile-time
// reflection, so AsNetBytes, FromNetBytes and AsBytes are plain functions
// that interpret that table at run time.
package bitfield

// Kind identifies the shape of a Field's contents.
type Kind uint8

const (
	// KindUint is an unsigned integer leaf of 1 to 64 bits.
	KindUint Kind = iota
	// KindBool is a single-bit boolean leaf.
	KindBool
	// KindRecord is a nested Record folded in at its own bit width.
	KindRecord
	// KindVariant is one of a closed set of Records; the active arm is
	// folded in, the discriminator contributes no bits.
	KindVariant
	// KindOptional is a Record that may be entirely absent, contributing
	// zero bits when it is.
	KindOptional
	// KindBytes is a raw, byte-aligned byte string whose length is
	// determined externally (e.g. a payload).
	KindBytes
)

// Field describes one named member of a Record and supplies the
// accessor closures the Bit Layout Engine needs to fold it into, or
// unfold it from, a wire image. Exactly one of the accessor groups below
// is meaningful for a given Kind:
//
//   - KindUint / KindBool: Get / Set, Width is the field's bit width (1-64).
//   - KindRecord: Sub is the nested Record; Width is computed from Sub.
//   - KindVariant: Sub is the active arm's Record (nil if none selected);
//     Width is computed from Sub.
//   - KindOptional: Present reports whether Sub should be folded in;
//     Width is 0 when absent.
//   - KindBytes: Bytes / SetBytes; Width is 8*len(current bytes).
type Field struct {
	Name    string
	Kind    Kind
	Width   int
	Get     func() uint64
	Set     func(uint64)
	Sub     Record
	Present bool
	Bytes   func() []byte
	SetBytes func([]byte)
}

// BitWidth returns the number of bits this field contributes to its
// owning Record's wire image.
func (f Field) BitWidth() int {
	switch f.Kind {
	case KindUint, KindBool:
		return f.Width
	case KindRecord, KindVariant:
		if f.Sub == nil {
			return 0
		}
		return BitWidth(f.Sub)
	case KindOptional:
		if !f.Present || f.Sub == nil {
			return 0
		}
		return BitWidth(f.Sub)
	case KindBytes:
		if f.Bytes == nil {
			return 0
		}
		return 8 * len(f.Bytes())
	default:
		return 0
	}
}
