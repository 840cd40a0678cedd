// Package wifi implements a minimal IEEE 802.11 MAC header schema, the
// second arm of the Frame and Packet catalog's L2 tagged variant. It
// covers the fixed portion of a data-frame header used between four
// stations (frame control, duration/ID, four 48-bit address fields and
// sequence control); the variable-length QoS control and HT control
// extensions are out of scope.
package wifi

import (
	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
)

// FrameControl is the first 16 bits of an 802.11 MAC header: protocol
// version, type, subtype and the control flags (ToDS, FromDS, More
// Fragments, Retry, Power Management, More Data, Protected Frame, Order).
type FrameControl uint16

// ProtocolVersion returns the 2-bit protocol version subfield.
func (fc FrameControl) ProtocolVersion() uint8 { return uint8(fc & 0x3) }

// Type returns the 2-bit frame type subfield.
func (fc FrameControl) Type() uint8 { return uint8(fc>>2) & 0x3 }

// Subtype returns the 4-bit frame subtype subfield.
func (fc FrameControl) Subtype() uint8 { return uint8(fc>>4) & 0xf }

// Header is the 240-bit (30-byte) fixed portion of an IEEE 802.11 data
// frame MAC header: frame control, duration/ID, three address fields
// (receiver, transmitter, and BSSID or destination depending on
// ToDS/FromDS), sequence control, and a fourth address field used only
// between two distribution-system stations.
type Header struct {
	FrameControl FrameControl
	DurationID   uint16
	Address1     addr.MAC
	Address2     addr.MAC
	Address3     addr.MAC
	SequenceCtrl uint16
	Address4     addr.MAC
}

// RecordKind implements bitfield.Record.
func (*Header) RecordKind() bitfield.RecordKind { return bitfield.RecordHeader }

// Layer implements bitfield.Record.
func (*Header) Layer() int { return 2 }

// DisplayName implements bitfield.Record.
func (*Header) DisplayName() string { return "WiFi header" }

// Fields implements bitfield.Record. This header exposes no derived-field
// method: the Datagram Aggregator treats a header lacking a length,
// header-checksum or CRC calculator as valid, and no WiFi-layer checksum
// is defined by this catalog.
func (h *Header) Fields() []bitfield.Field {
	return []bitfield.Field{
		{Name: "frame_control", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.FrameControl) },
			Set: func(v uint64) { h.FrameControl = FrameControl(v) }},
		{Name: "duration_id", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.DurationID) },
			Set: func(v uint64) { h.DurationID = uint16(v) }},
		{Name: "address1", Kind: bitfield.KindRecord, Sub: &h.Address1},
		{Name: "address2", Kind: bitfield.KindRecord, Sub: &h.Address2},
		{Name: "address3", Kind: bitfield.KindRecord, Sub: &h.Address3},
		{Name: "sequence_control", Kind: bitfield.KindUint, Width: 16,
			Get: func() uint64 { return uint64(h.SequenceCtrl) },
			Set: func(v uint64) { h.SequenceCtrl = uint16(v) }},
		{Name: "address4", Kind: bitfield.KindRecord, Sub: &h.Address4},
	}
}

// Footer is the L2-footer arm for a WiFi datagram: empty, since this
// catalog defines no WiFi-layer trailer (802.11's FCS is ordinarily
// stripped by the radio driver before a frame reaches software). It
// exposes no derived-field method, so the Datagram Aggregator's L2-footer
// step is a no-op when this arm is selected.
type Footer struct{}

// RecordKind implements bitfield.Record.
func (*Footer) RecordKind() bitfield.RecordKind { return bitfield.RecordFrame }

// Layer implements bitfield.Record.
func (*Footer) Layer() int { return 2 }

// DisplayName implements bitfield.Record.
func (*Footer) DisplayName() string { return "WiFi footer" }

// Fields implements bitfield.Record: the WiFi footer contributes no bits.
func (*Footer) Fields() []bitfield.Field { return nil }
