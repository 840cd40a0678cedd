// Package datagram implements the Datagram Aggregator: the
// cross-layer type that owns one Layer-2 header/footer pair, one Layer-3
// header, an optional Layer-4 header and a payload, and orchestrates the
// derived-field calculations across all of them in the order the wire
// checksums require.
package datagram

import (
	"fmt"

	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/bitfield"
	"github.com/packetcraft/bitframe/ethernet"
	"github.com/packetcraft/bitframe/icmp"
	"github.com/packetcraft/bitframe/ipv4"
	"github.com/packetcraft/bitframe/tcp"
	"github.com/packetcraft/bitframe/udp"
	"github.com/packetcraft/bitframe/wifi"
)

// Full is the `{L2-hdr, L3-hdr, L4-hdr, payload, L2-ftr}` aggregator type.
// L4Header is nil when no Layer-4 header was requested.
type Full struct {
	L2Tag, L3Tag, L4Tag string

	L2Header bitfield.Record
	L3Header bitfield.Record
	L4Header bitfield.Record
	Payload  []byte
	L2Footer bitfield.Record
}

// Init builds a Full datagram. layer names the outermost user-provided
// layer (2, 3 or 4); headerTags supplies the tags for that layer and
// every layer below it, in top-down order; footerTag names the L2-footer
// variant. Headers above the requested layer default to Ethernet (L2) and
// IPv4 (L3). Unknown tags yield ErrInvalidHeader/ErrInvalidFooter.
func Init(layer int, headerTags []string, payload []byte, footerTag string) (*Full, error) {
	var l2Tag, l3Tag, l4Tag string
	switch layer {
	case 2:
		if len(headerTags) < 2 {
			return nil, fmt.Errorf("%w: layer 2 requires at least 2 header tags", bitframe.ErrInvalidHeader)
		}
		l2Tag, l3Tag = headerTags[0], headerTags[1]
		if len(headerTags) >= 3 {
			l4Tag = headerTags[2]
		}
	case 3:
		if len(headerTags) < 1 {
			return nil, fmt.Errorf("%w: layer 3 requires at least 1 header tag", bitframe.ErrInvalidHeader)
		}
		l2Tag = "eth"
		l3Tag = headerTags[0]
		if len(headerTags) >= 2 {
			l4Tag = headerTags[1]
		}
	case 4:
		if len(headerTags) < 1 {
			return nil, fmt.Errorf("%w: layer 4 requires 1 header tag", bitframe.ErrInvalidHeader)
		}
		l2Tag, l3Tag = "eth", "ip"
		l4Tag = headerTags[0]
	default:
		return nil, fmt.Errorf("%w: layer must be 2, 3 or 4, got %d", bitframe.ErrInvalidHeader, layer)
	}

	l2, err := newL2Header(l2Tag)
	if err != nil {
		return nil, err
	}
	l3, err := newL3Header(l3Tag)
	if err != nil {
		return nil, err
	}
	var l4 bitfield.Record
	if l4Tag != "" {
		l4, err = newL4Header(l4Tag)
		if err != nil {
			return nil, err
		}
	}
	footer, err := newL2Footer(footerTag)
	if err != nil {
		return nil, err
	}

	body := make([]byte, len(payload))
	copy(body, payload)

	return &Full{
		L2Tag: l2Tag, L3Tag: l3Tag, L4Tag: l4Tag,
		L2Header: l2, L3Header: l3, L4Header: l4,
		Payload:  body,
		L2Footer: footer,
	}, nil
}

func newL2Header(tag string) (bitfield.Record, error) {
	switch tag {
	case "eth":
		return &ethernet.Header{}, nil
	case "wifi":
		return &wifi.Header{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown L2 header tag %q", bitframe.ErrInvalidHeader, tag)
	}
}

func newL2Footer(tag string) (bitfield.Record, error) {
	switch tag {
	case "eth":
		return &ethernet.Footer{}, nil
	case "wifi":
		return &wifi.Footer{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown L2 footer tag %q", bitframe.ErrInvalidFooter, tag)
	}
}

func newL3Header(tag string) (bitfield.Record, error) {
	switch tag {
	case "ip":
		return ipv4.NewHeader(), nil
	case "icmp":
		return &icmp.Packet{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown L3 header tag %q", bitframe.ErrInvalidHeader, tag)
	}
}

func newL4Header(tag string) (bitfield.Record, error) {
	switch tag {
	case "udp":
		return &udp.Header{}, nil
	case "tcp":
		return tcp.NewHeader(), nil
	default:
		return nil, fmt.Errorf("%w: unknown L4 header tag %q", bitframe.ErrInvalidHeader, tag)
	}
}

// CalcFromPayload runs the four-step cross-layer orchestration:
// it pads the payload so the eventual wire image lands on a 4-byte
// boundary, then invokes each present header's derived-field method in
// strict L4 → L3 → L2-footer order, each one reading the wire image
// produced by the step before it. alloc, if non-nil, is used to obtain
// the backing array for the padded payload; it receives the final
// length and must return a slice of at least that length.
func (d *Full) CalcFromPayload(alloc func(n int) []byte) error {
	d.pad(alloc)

	l4Wire, err := d.calcL4()
	if err != nil {
		return err
	}

	l3Payload := append(append([]byte{}, l4Wire...), d.Payload...)
	if err := d.calcL3(l3Payload); err != nil {
		return err
	}

	l2hdrWire, err := bitfield.AsNetBytes(d.L2Header)
	if err != nil {
		return err
	}
	l3Wire, err := bitfield.AsNetBytes(d.L3Header)
	if err != nil {
		return err
	}
	l2Payload := append(l2hdrWire, append(l3Wire, l3Payload...)...)
	if err := d.calcL2Footer(l2Payload); err != nil {
		return err
	}
	return nil
}

// pad appends zero filler bytes to the payload so the L2-hdr+L3+L4+payload
// total lands on a 32-bit boundary, per step 1.
func (d *Full) pad(alloc func(n int) []byte) {
	l2hdrBits := bitfield.BitWidth(d.L2Header)
	l3Bits := bitfield.BitWidth(d.L3Header)
	l4Bits := 0
	if d.L4Header != nil {
		l4Bits = bitfield.BitWidth(d.L4Header)
	}
	totalBits := l2hdrBits + l3Bits + l4Bits + 8*len(d.Payload)
	if rem := totalBits % 32; rem > 0 {
		fillerBytes := (32 - rem) / 8
		d.Payload = growZero(d.Payload, len(d.Payload)+fillerBytes, alloc)
	}
}

func growZero(b []byte, n int, alloc func(n int) []byte) []byte {
	if n <= len(b) {
		return b
	}
	var out []byte
	if alloc != nil {
		out = alloc(n)
	} else {
		out = make([]byte, n)
	}
	copy(out, b)
	return out[:n]
}

func (d *Full) calcL4() ([]byte, error) {
	if d.L4Header == nil {
		return nil, nil
	}
	calc, ok := d.L4Header.(bitfield.LengthChecksumCalculator)
	if !ok {
		return nil, fmt.Errorf("%w: %s", bitframe.ErrNoCalcMethod, d.L4Header.DisplayName())
	}
	d.propagatePseudoHeader()
	if err := calc.CalcLengthAndChecksum(d.Payload); err != nil {
		return nil, err
	}
	return bitfield.AsNetBytes(d.L4Header)
}

func (d *Full) calcL3(payload []byte) error {
	switch h := d.L3Header.(type) {
	case bitfield.HeaderChecksumCalculator:
		return h.CalcLengthAndHeaderChecksum(payload)
	case bitfield.LengthChecksumCalculator:
		return h.CalcLengthAndChecksum(payload)
	default:
		return fmt.Errorf("%w: %s", bitframe.ErrNoCalcMethod, d.L3Header.DisplayName())
	}
}

func (d *Full) calcL2Footer(payload []byte) error {
	calc, ok := d.L2Footer.(bitfield.CRCCalculator)
	if !ok {
		return nil
	}
	return calc.CalcCRC(payload)
}

// propagatePseudoHeader copies the L3 IPv4 header's source/destination
// into an L4 header's non-wire PseudoSource/PseudoDestination fields, if
// the L3 header is IPv4 and the L4 header is UDP or TCP.
func (d *Full) propagatePseudoHeader() {
	ip, ok := d.L3Header.(*ipv4.Header)
	if !ok {
		return
	}
	switch l4 := d.L4Header.(type) {
	case *udp.Header:
		l4.PseudoSource, l4.PseudoDestination = ip.Source, ip.Destination
	case *tcp.Header:
		l4.PseudoSource, l4.PseudoDestination = ip.Source, ip.Destination
	}
}

// AsNetBytes concatenates L2-hdr ∥ L3 ∥ (L4 if present) ∥ payload ∥
// L2-ftr and returns the resulting wire image, whose length is always a
// multiple of bitframe.DatagramAlignTo.
func (d *Full) AsNetBytes() ([]byte, error) {
	var out []byte
	for _, r := range []bitfield.Record{d.L2Header, d.L3Header, d.L4Header} {
		if r == nil {
			continue
		}
		b, err := bitfield.AsNetBytes(r)
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	out = append(out, d.Payload...)
	b, err := bitfield.AsNetBytes(d.L2Footer)
	if err != nil {
		return nil, err
	}
	out = append(out, b...)
	if len(out)%bitframe.DatagramAlignTo != 0 {
		return nil, fmt.Errorf("bitframe: datagram wire image length %d not a multiple of %d", len(out), bitframe.DatagramAlignTo)
	}
	return out, nil
}
