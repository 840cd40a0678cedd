package bitfield

import (
	"fmt"
	"math/big"

	"github.com/packetcraft/bitframe"
)

// AsNetBytes returns the wire image of r: its fields folded MSB-first, in
// declaration order, into an unsigned integer of total width BitWidth(r),
// padded on the right with zero bits to a byte boundary if necessary, and
// written out big-endian. Errors if a field's value does not fit its
// declared width, a variant field has no active arm selected, or a byte
// string field falls at a non-byte-aligned bit position.
func AsNetBytes(r Record) ([]byte, error) {
	acc, _, err := fold(r)
	if err != nil {
		return nil, err
	}
	total := BitWidth(r)
	byteLen := (total + 7) / 8
	pad := byteLen*8 - total
	acc.Lsh(acc, uint(pad))
	return bigToFixedBytes(acc, byteLen), nil
}

// FromNetBytes parses data, the wire image produced by AsNetBytes, back
// into r. r must already be configured with the same optional-presence and
// variant-arm selections it had when serialized; FromNetBytes only fills
// in leaf values, it does not discover which variant arm or whether an
// optional was present. Returns ErrInsufficientBytes if data is shorter
// than ByteLen(r).
func FromNetBytes(r Record, data []byte) error {
	total := BitWidth(r)
	byteLen := (total + 7) / 8
	if len(data) < byteLen {
		return bitframe.ErrInsufficientBytes
	}
	pad := byteLen*8 - total
	val := new(big.Int).SetBytes(data[:byteLen])
	val.Rsh(val, uint(pad))
	return unfold(r, val, total)
}

// AsBytes returns a native-endian diagnostic rendering of r, truncated to
// ByteLen(r) bytes: the wire image with its byte order reversed. It is not
// meant to be parsed back; use AsNetBytes/FromNetBytes for that.
// Intended only for diagnostic use on little-endian hosts.
func AsBytes(r Record) ([]byte, error) {
	nb, err := AsNetBytes(r)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(nb))
	for i, b := range nb {
		out[len(nb)-1-i] = b
	}
	return out, nil
}

// fold recursively builds the big-endian integer value of r (exactly
// BitWidth(r) bits wide, no padding) by walking its Fields table MSB-first.
func fold(r Record) (*big.Int, int, error) {
	acc := new(big.Int)
	pos := 0
	for _, f := range r.Fields() {
		w := f.BitWidth()
		switch f.Kind {
		case KindUint, KindBool:
			if w == 0 {
				continue
			}
			v := f.Get()
			if f.Width < 64 && v>>uint(f.Width) != 0 {
				return nil, 0, fmt.Errorf("%w: field %q value 0x%x exceeds %d bits", bitframe.ErrInvalidWidth, f.Name, v, f.Width)
			}
			acc.Lsh(acc, uint(w))
			acc.Or(acc, new(big.Int).SetUint64(v))
			pos += w
		case KindRecord:
			if f.Sub == nil {
				continue
			}
			sub, subW, err := fold(f.Sub)
			if err != nil {
				return nil, 0, fmt.Errorf("field %q: %w", f.Name, err)
			}
			acc.Lsh(acc, uint(subW))
			acc.Or(acc, sub)
			pos += subW
		case KindVariant:
			if f.Sub == nil {
				return nil, 0, fmt.Errorf("%w: field %q has no active arm", bitframe.ErrUnknownVariantTag, f.Name)
			}
			sub, subW, err := fold(f.Sub)
			if err != nil {
				return nil, 0, fmt.Errorf("field %q: %w", f.Name, err)
			}
			acc.Lsh(acc, uint(subW))
			acc.Or(acc, sub)
			pos += subW
		case KindOptional:
			if !f.Present || f.Sub == nil {
				continue
			}
			sub, subW, err := fold(f.Sub)
			if err != nil {
				return nil, 0, fmt.Errorf("field %q: %w", f.Name, err)
			}
			acc.Lsh(acc, uint(subW))
			acc.Or(acc, sub)
			pos += subW
		case KindBytes:
			if w == 0 {
				continue
			}
			if pos%8 != 0 {
				return nil, 0, fmt.Errorf("%w: field %q at bit %d", bitframe.ErrUnalignedPayload, f.Name, pos)
			}
			acc.Lsh(acc, uint(w))
			acc.Or(acc, new(big.Int).SetBytes(f.Bytes()))
			pos += w
		}
	}
	return acc, pos, nil
}

// unfold is the inverse of fold: given val holding exactly total bits
// (MSB-aligned, no padding), it slices out each field of r in declaration
// order and calls the field's Set/SetBytes, recursing into nested and
// variant Records.
func unfold(r Record, val *big.Int, total int) error {
	pos := total
	for _, f := range r.Fields() {
		w := f.BitWidth()
		if w == 0 {
			continue
		}
		shift := pos - w
		piece := new(big.Int).Rsh(val, uint(shift))
		mask := new(big.Int).Lsh(big.NewInt(1), uint(w))
		mask.Sub(mask, big.NewInt(1))
		piece.And(piece, mask)

		switch f.Kind {
		case KindUint, KindBool:
			f.Set(piece.Uint64())
		case KindRecord, KindVariant, KindOptional:
			if err := unfold(f.Sub, piece, w); err != nil {
				return fmt.Errorf("field %q: %w", f.Name, err)
			}
		case KindBytes:
			f.SetBytes(bigToFixedBytes(piece, w/8))
		}
		pos = shift
	}
	return nil
}

func bigToFixedBytes(v *big.Int, n int) []byte {
	out := make([]byte, n)
	bs := v.Bytes()
	copy(out[n-len(bs):], bs)
	return out
}
