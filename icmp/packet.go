// Package icmp implements the ICMP packet schema of the Frame and Packet
// catalog: type, code, checksum and a 32-bit rest-of-header field
// (used as identifier+sequence for echo request/reply, the only variant
// this catalog constructs), per RFC 792.
package icmp

import (
	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/bitfield"
)

// Type is the ICMP message type.
type Type uint8

// ICMP message types used by this catalog.
const (
	TypeEchoReply Type = 0 // echo reply
	TypeEcho      Type = 8 // echo request
)

// Packet is the 64-bit (8-byte) fixed portion of an ICMP message: Type,
// Code, Checksum, and a 32-bit rest-of-header. For echo request/reply the
// rest-of-header is Identifier (16 bits) and SequenceNumber (16 bits).
type Packet struct {
	Type           Type
	Code           uint8
	Checksum       uint16
	Identifier     uint16
	SequenceNumber uint16
}

// NewEcho returns an ICMP echo request Packet with the given identifier
// and sequence number.
func NewEcho(id, seq uint16) *Packet {
	return &Packet{Type: TypeEcho, Identifier: id, SequenceNumber: seq}
}

// RecordKind implements bitfield.Record.
func (*Packet) RecordKind() bitfield.RecordKind { return bitfield.RecordPacket }

// Layer implements bitfield.Record.
func (*Packet) Layer() int { return 4 }

// DisplayName implements bitfield.Record.
func (*Packet) DisplayName() string { return "ICMP packet" }

// Fields implements bitfield.Record.
func (p *Packet) Fields() []bitfield.Field {
	return []bitfield.Field{
		{Name: "type", Kind: bitfield.KindUint, Width: 8,
			Get: func() uint64 { return uint64(p.Type) },
			Set: func(v uint64) { p.Type = Type(v) }},
		{Name: "code", Kind: bitfield.KindUint, Width: 8,
			Get: func() uint64 { return uint64(p.Code) },
			Set: func(v uint64) { p.Code = uint8(v) }},
		{Name: "checksum", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(p.Checksum) },
			Set: func(v uint64) { p.Checksum = uint16(v) }},
		{Name: "identifier", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(p.Identifier) },
			Set: func(v uint64) { p.Identifier = uint16(v) }},
		{Name: "sequence_number", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(p.SequenceNumber) },
			Set: func(v uint64) { p.SequenceNumber = uint16(v) }},
	}
}

// CalcLengthAndChecksum implements bitfield.LengthChecksumCalculator.
// ICMP has no pseudo-header and no separate length field: the
// checksum covers the header (Checksum zeroed) concatenated with payload.
func (p *Packet) CalcLengthAndChecksum(payload []byte) error {
	p.Checksum = 0
	raw, err := bitfield.AsNetBytes(p)
	if err != nil {
		return err
	}
	var crc bitframe.InternetChecksum
	crc.WriteOdd(append(raw, payload...))
	p.Checksum = crc.Sum16()
	return nil
}
