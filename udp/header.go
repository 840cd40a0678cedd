// Package udp implements the UDP header schema of the Frame and Packet
// catalog: the 64-bit (8-byte) RFC 768 header, with its derived
// length and pseudo-header checksum fields.
package udp

import (
	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
)

// Header is the 8-byte UDP header: source port, destination port, length,
// checksum. See RFC 768.
//
// PseudoSource and PseudoDestination are not part of the wire image (they
// are not listed in Fields): the Datagram Aggregator copies them in from
// the enclosing IPv4 header before calling CalcLengthAndChecksum, since
// calc-length-and-checksum(payload) takes only the payload, yet the
// checksum it computes covers the standard pseudo-header.
type Header struct {
	SourcePort      uint16
	DestinationPort uint16
	Length          uint16
	Checksum        uint16

	PseudoSource      addr.IPv4
	PseudoDestination addr.IPv4
}

// RecordKind implements bitfield.Record.
func (*Header) RecordKind() bitfield.RecordKind { return bitfield.RecordHeader }

// Layer implements bitfield.Record.
func (*Header) Layer() int { return 4 }

// DisplayName implements bitfield.Record.
func (*Header) DisplayName() string { return "UDP header" }

// Fields implements bitfield.Record.
func (h *Header) Fields() []bitfield.Field {
	return []bitfield.Field{
		{Name: "source_port", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.SourcePort) },
			Set: func(v uint64) { h.SourcePort = uint16(v) }},
		{Name: "destination_port", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.DestinationPort) },
			Set: func(v uint64) { h.DestinationPort = uint16(v) }},
		{Name: "length", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.Length) },
			Set: func(v uint64) { h.Length = uint16(v) }},
		{Name: "checksum", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.Checksum) },
			Set: func(v uint64) { h.Checksum = uint16(v) }},
	}
}

// CalcLengthAndChecksum implements bitfield.LengthChecksumCalculator:
// length is header bytes (8) plus len(payload); the checksum is
// computed over the standard IPv4/UDP pseudo-header (using
// PseudoSource/PseudoDestination), the header (checksum zeroed) and the
// payload. A zero result is mapped to 0xffff, since UDP reserves an
// all-zero checksum to mean "none computed".
func (h *Header) CalcLengthAndChecksum(payload []byte) error {
	h.Length = uint16(bitframe.SizeHeaderUDP + len(payload))
	h.Checksum = 0
	raw, err := bitfield.AsNetBytes(h)
	if err != nil {
		return err
	}
	var crc bitframe.InternetChecksum
	crc.Write(h.PseudoSource[:])
	crc.Write(h.PseudoDestination[:])
	crc.AddUint16(uint16(bitframe.IPProtoUDP))
	crc.AddUint16(h.Length)
	crc.Write(raw)
	crc.WriteOdd(payload)
	h.Checksum = bitframe.NeverZero(crc.Sum16())
	return nil
}
