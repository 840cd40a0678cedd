package bitfield

// RecordKind classifies a Record for the Annotated Formatter: whether it
// gets a boxed title (HEADER/PACKET/FRAME) or is rendered inline (BASIC/OPTION).
type RecordKind uint8

const (
	RecordBasic RecordKind = iota
	RecordOption
	RecordHeader
	RecordPacket
	RecordFrame
)

func (k RecordKind) String() string {
	switch k {
	case RecordBasic:
		return "BASIC"
	case RecordOption:
		return "OPTION"
	case RecordHeader:
		return "HEADER"
	case RecordPacket:
		return "PACKET"
	case RecordFrame:
		return "FRAME"
	default:
		return "UNKNOWN"
	}
}

// Record is a BitFieldGroup: an ordered sequence of Fields with a
// classification and advisory layer number used by the Annotated
// Formatter, and a display name used in diagrams.
//
// Implementations are expected to be small value or pointer types that
// build their Field table on demand in Fields; see the ethernet, ipv4,
// icmp, udp, tcp, wifi and addr packages for concrete schemas.
type Record interface {
	// RecordKind classifies the record for formatter rules.
	RecordKind() RecordKind
	// Layer is advisory: 2, 3, 4 or 7.
	Layer() int
	// DisplayName is used in diagrams and error messages.
	DisplayName() string
	// Fields returns the ordered field table. Implementations build this
	// slice fresh (or from a small fixed backing array) on each call; it
	// must reflect the record's current optional-presence and
	// variant-selection state.
	Fields() []Field
}

// BitWidth returns the total bit width of r: the sum of its fields'
// BitWidth, with absent optionals contributing zero.
func BitWidth(r Record) int {
	total := 0
	for _, f := range r.Fields() {
		total += f.BitWidth()
	}
	return total
}

// ByteLen returns the number of bytes r occupies once padded to a byte
// boundary, i.e. ceil(BitWidth(r)/8).
func ByteLen(r Record) int {
	return (BitWidth(r) + 7) / 8
}
