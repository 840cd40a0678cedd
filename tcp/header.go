// Package tcp implements the TCP header schema of the Frame and Packet
// catalog: the 160-bit (20-byte), no-options RFC 793 header, with
// its derived pseudo-header checksum field.
package tcp

import (
	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
)

// Header is the 20-byte (no options) TCP header: source/destination port,
// sequence/acknowledgment numbers, data offset, control flags, window
// size, checksum and urgent pointer. See RFC 793.
//
// PseudoSource and PseudoDestination are not part of the wire image (they
// are not listed in Fields): like udp.Header, the Datagram Aggregator
// copies them in from the enclosing IPv4 header before calling
// CalcLengthAndChecksum, since the checksum covers the standard
// pseudo-header even though TCP carries no length field of its own.
type Header struct {
	SourcePort      uint16
	DestinationPort uint16
	Sequence        uint32
	Acknowledgment  uint32
	DataOffset      uint8 // header length in 32-bit words; 5 when no options
	Reserved        uint8 // 4 bits, must be zero
	Flags           Flags
	WindowSize      uint16
	Checksum        uint16
	UrgentPointer   uint16

	PseudoSource      addr.IPv4
	PseudoDestination addr.IPv4
}

// NewHeader returns a Header with DataOffset set to the fixed 5 (no
// options) value.
func NewHeader() *Header {
	return &Header{DataOffset: 5}
}

// RecordKind implements bitfield.Record.
func (*Header) RecordKind() bitfield.RecordKind { return bitfield.RecordHeader }

// Layer implements bitfield.Record.
func (*Header) Layer() int { return 4 }

// DisplayName implements bitfield.Record.
func (*Header) DisplayName() string { return "TCP header" }

// Fields implements bitfield.Record.
func (h *Header) Fields() []bitfield.Field {
	return []bitfield.Field{
		{Name: "source_port", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.SourcePort) },
			Set: func(v uint64) { h.SourcePort = uint16(v) }},
		{Name: "destination_port", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.DestinationPort) },
			Set: func(v uint64) { h.DestinationPort = uint16(v) }},
		{Name: "sequence", Kind: bitfield.KindUint, Width: 32,
			Get: func() uint64 { return uint64(h.Sequence) },
			Set: func(v uint64) { h.Sequence = uint32(v) }},
		{Name: "acknowledgment", Kind: bitfield.KindUint, Width: 32,
			Get: func() uint64 { return uint64(h.Acknowledgment) },
			Set: func(v uint64) { h.Acknowledgment = uint32(v) }},
		{Name: "data_offset", Kind: bitfield.KindUint, Width: 4,
			Get: func() uint64 { return uint64(h.DataOffset) },
			Set: func(v uint64) { h.DataOffset = uint8(v) }},
		{Name: "reserved", Kind: bitfield.KindUint, Width: 4,
			Get: func() uint64 { return uint64(h.Reserved) },
			Set: func(v uint64) { h.Reserved = uint8(v) }},
		{Name: "flags", Kind: bitfield.KindUint, Width: 8,
			Get: func() uint64 { return uint64(h.Flags) },
			Set: func(v uint64) { h.Flags = Flags(v) }},
		{Name: "window_size", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.WindowSize) },
			Set: func(v uint64) { h.WindowSize = uint16(v) }},
		{Name: "checksum", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.Checksum) },
			Set: func(v uint64) { h.Checksum = uint16(v) }},
		{Name: "urgent_pointer", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.UrgentPointer) },
			Set: func(v uint64) { h.UrgentPointer = uint16(v) }},
	}
}

// CalcLengthAndChecksum implements bitfield.LengthChecksumCalculator.
// TCP has no length field of its own, so the "length" this method
// is asked to derive only feeds the pseudo-header; the checksum is
// computed over the standard IPv4/TCP pseudo-header (using
// PseudoSource/PseudoDestination), the header (checksum zeroed) and the
// payload.
func (h *Header) CalcLengthAndChecksum(payload []byte) error {
	h.Checksum = 0
	raw, err := bitfield.AsNetBytes(h)
	if err != nil {
		return err
	}
	segLen := uint16(bitframe.SizeHeaderTCP + len(payload))
	var crc bitframe.InternetChecksum
	crc.Write(h.PseudoSource[:])
	crc.Write(h.PseudoDestination[:])
	crc.AddUint16(uint16(bitframe.IPProtoTCP))
	crc.AddUint16(segLen)
	crc.Write(raw)
	crc.WriteOdd(payload)
	h.Checksum = crc.Sum16()
	return nil
}
