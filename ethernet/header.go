// Package ethernet implements the Ethernet II link-layer schemas of the
// Frame and Packet catalog: a fixed-width Header (destination MAC,
// source MAC, EtherType) and a Footer carrying the frame's CRC-32.
package ethernet

import (
	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
)

// Header is the 112-bit (14-byte) Ethernet II header: destination MAC,
// source MAC and EtherType, in that wire order. See IEEE 802.3.
type Header struct {
	Destination addr.MAC
	Source      addr.MAC
	EtherType   bitframe.EtherType
}

// RecordKind implements bitfield.Record.
func (*Header) RecordKind() bitfield.RecordKind { return bitfield.RecordHeader }

// Layer implements bitfield.Record.
func (*Header) Layer() int { return 2 }

// DisplayName implements bitfield.Record.
func (*Header) DisplayName() string { return "Ethernet header" }

// Fields implements bitfield.Record.
func (h *Header) Fields() []bitfield.Field {
	return []bitfield.Field{
		{Name: "destination", Kind: bitfield.KindRecord, Sub: &h.Destination},
		{Name: "source", Kind: bitfield.KindRecord, Sub: &h.Source},
		{
			Name: "ethertype", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.EtherType) },
			Set: func(v uint64) { h.EtherType = bitframe.EtherType(v) },
		},
	}
}

// Footer is the Ethernet Frame Check Sequence: a single 32-bit CRC field.
// It implements bitfield.CRCCalculator.
type Footer struct {
	CRC uint32
}

// RecordKind implements bitfield.Record.
func (*Footer) RecordKind() bitfield.RecordKind { return bitfield.RecordFrame }

// Layer implements bitfield.Record.
func (*Footer) Layer() int { return 2 }

// DisplayName implements bitfield.Record.
func (*Footer) DisplayName() string { return "Ethernet footer" }

// Fields implements bitfield.Record.
func (f *Footer) Fields() []bitfield.Field {
	return []bitfield.Field{{
		Name: "crc", Kind: bitfield.KindUint, Width: 32,
		Get: func() uint64 { return uint64(f.CRC) },
		Set: func(v uint64) { f.CRC = uint32(v) },
	}}
}

// CalcCRC implements bitfield.CRCCalculator: it computes the IEEE
// 802.3 CRC-32 over frameExcludingFooter (destination MAC through payload,
// not including this footer) and stores it in f.CRC.
func (f *Footer) CalcCRC(frameExcludingFooter []byte) error {
	f.CRC = CRC32(frameExcludingFooter)
	return nil
}
