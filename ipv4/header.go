// Package ipv4 implements the IPv4 header schema of the Frame and Packet
// catalog: the 160-bit (20-byte), no-options RFC 791 header, with
// its derived total-length and header-checksum fields.
package ipv4

import (
	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
)

// Header is the 20-byte (no options) IPv4 header. Version is fixed at 4
// and IHL at 5 (no options); both are represented as a single Field so
// that a full round-trip parse recovers whatever value was present on the
// wire, even though this package only ever serializes 4/5. See RFC 791.
type Header struct {
	VersionIHL     uint8
	ToS            bitframe.IPToS
	TotalLength    uint16
	ID             uint16
	Flags          bitframe.IPv4Flags
	TTL            uint8
	Protocol       bitframe.IPProto
	HeaderChecksum uint16
	Source         addr.IPv4
	Destination    addr.IPv4
}

// NewHeader returns a Header with Version/IHL set to the fixed 4/5 (no
// options) value and TTL defaulted to 64.
func NewHeader() *Header {
	return &Header{VersionIHL: 4<<4 | 5, TTL: 64}
}

// RecordKind implements bitfield.Record.
func (*Header) RecordKind() bitfield.RecordKind { return bitfield.RecordHeader }

// Layer implements bitfield.Record.
func (*Header) Layer() int { return 3 }

// DisplayName implements bitfield.Record.
func (*Header) DisplayName() string { return "IPv4 header" }

// IHL returns the header length in bytes as encoded by the low 4 bits of
// VersionIHL (units of 4-byte words).
func (h *Header) IHL() int { return int(h.VersionIHL&0xf) * 4 }

// Fields implements bitfield.Record.
func (h *Header) Fields() []bitfield.Field {
	return []bitfield.Field{
		{Name: "version_ihl", Kind: bitfield.KindUint, Width: 8,
			Get: func() uint64 { return uint64(h.VersionIHL) },
			Set: func(v uint64) { h.VersionIHL = uint8(v) }},
		{Name: "tos", Kind: bitfield.KindUint, Width: 8,
			Get: func() uint64 { return uint64(h.ToS) },
			Set: func(v uint64) { h.ToS = bitframe.IPToS(v) }},
		{Name: "total_length", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.TotalLength) },
			Set: func(v uint64) { h.TotalLength = uint16(v) }},
		{Name: "id", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.ID) },
			Set: func(v uint64) { h.ID = uint16(v) }},
		{Name: "flags_fragoff", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.Flags) },
			Set: func(v uint64) { h.Flags = bitframe.IPv4Flags(v) }},
		{Name: "ttl", Kind: bitfield.KindUint, Width: 8,
			Get: func() uint64 { return uint64(h.TTL) },
			Set: func(v uint64) { h.TTL = uint8(v) }},
		{Name: "protocol", Kind: bitfield.KindUint, Width: 8,
			Get: func() uint64 { return uint64(h.Protocol) },
			Set: func(v uint64) { h.Protocol = bitframe.IPProto(v) }},
		{Name: "header_checksum", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.HeaderChecksum) },
			Set: func(v uint64) { h.HeaderChecksum = uint16(v) }},
		{Name: "source", Kind: bitfield.KindRecord, Sub: &h.Source},
		{Name: "destination", Kind: bitfield.KindRecord, Sub: &h.Destination},
	}
}

// CalcLengthAndHeaderChecksum implements bitfield.HeaderChecksumCalculator:
// it sets TotalLength to the header size (20) plus len(payload),
// zeros HeaderChecksum, serializes the header, and computes the RFC 1071
// Internet checksum over that image, storing the result back into
// HeaderChecksum.
func (h *Header) CalcLengthAndHeaderChecksum(payload []byte) error {
	h.TotalLength = uint16(bitframe.SizeHeaderIPv4 + len(payload))
	h.HeaderChecksum = 0
	raw, err := bitfield.AsNetBytes(h)
	if err != nil {
		return err
	}
	var crc bitframe.InternetChecksum
	crc.Write(raw)
	h.HeaderChecksum = crc.Sum16()
	return nil
}
