package addr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/bitfield"
)

// MAC is a 48-bit Ethernet hardware address. It implements bitfield.Record
// as a single 48-bit unsigned-integer leaf.
type MAC [6]byte

// RecordKind implements bitfield.Record.
func (MAC) RecordKind() bitfield.RecordKind { return bitfield.RecordBasic }

// Layer implements bitfield.Record.
func (MAC) Layer() int { return 2 }

// DisplayName implements bitfield.Record.
func (MAC) DisplayName() string { return "MAC" }

// Fields implements bitfield.Record.
func (a *MAC) Fields() []bitfield.Field {
	return []bitfield.Field{{
		Name:  "address",
		Kind:  bitfield.KindUint,
		Width: 48,
		Get: func() uint64 {
			var v uint64
			for _, b := range a {
				v = v<<8 | uint64(b)
			}
			return v
		},
		Set: func(v uint64) {
			for i := 5; i >= 0; i-- {
				a[i] = byte(v)
				v >>= 8
			}
		},
	}}
}

// String renders a in canonical "AA:BB:CC:DD:EE:FF" form, uppercase.
func (a MAC) String() string {
	return fmt.Sprintf("%02X:%02X:%02X:%02X:%02X:%02X", a[0], a[1], a[2], a[3], a[4], a[5])
}

// MarshalText implements encoding.TextMarshaler for the textual-codec hook.
func (a MAC) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler for the textual-codec hook.
func (a *MAC) UnmarshalText(text []byte) error {
	v, err := MACFromStr(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// MACFromStr parses a 48-bit hardware address. Accepted forms, separators
// case-insensitive: "XX:XX:XX:XX:XX:XX", "XX-XX-XX-XX-XX-XX",
// "XX XX XX XX XX XX" or the bare 12 hex digits "XXXXXXXXXXXX". Returns
// ErrInvalidMACString on malformed input, after logging the offending
// string.
func MACFromStr(s string) (MAC, error) {
	var hex string
	switch {
	case strings.Contains(s, ":"):
		hex = strings.ReplaceAll(s, ":", "")
	case strings.Contains(s, "-"):
		hex = strings.ReplaceAll(s, "-", "")
	case strings.Contains(s, " "):
		hex = strings.ReplaceAll(s, " ", "")
	default:
		hex = s
	}
	if len(hex) != 12 {
		err := fmt.Errorf("%w: %q", bitframe.ErrInvalidMACString, s)
		warnParseFailure("MAC", s, err)
		return MAC{}, err
	}
	var a MAC
	for i := 0; i < 6; i++ {
		n, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			werr := fmt.Errorf("%w: %q", bitframe.ErrInvalidMACString, s)
			warnParseFailure("MAC", s, werr)
			return MAC{}, werr
		}
		a[i] = byte(n)
	}
	return a, nil
}
