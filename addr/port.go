package addr

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/bitfield"
)

// Port is a 16-bit unsigned TCP/UDP port number. It implements
// bitfield.Record as a single 16-bit unsigned-integer leaf.
type Port uint16

// RecordKind implements bitfield.Record.
func (Port) RecordKind() bitfield.RecordKind { return bitfield.RecordBasic }

// Layer implements bitfield.Record.
func (Port) Layer() int { return 4 }

// DisplayName implements bitfield.Record.
func (Port) DisplayName() string { return "Port" }

// Fields implements bitfield.Record.
func (p *Port) Fields() []bitfield.Field {
	return []bitfield.Field{{
		Name:  "port",
		Kind:  bitfield.KindUint,
		Width: 16,
		Get:   func() uint64 { return uint64(*p) },
		Set:   func(v uint64) { *p = Port(v) },
	}}
}

func (p Port) String() string { return strconv.Itoa(int(p)) }

// MarshalText implements encoding.TextMarshaler for the textual-codec hook.
func (p Port) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler for the textual-codec hook.
func (p *Port) UnmarshalText(text []byte) error {
	v, err := parsePort(string(text))
	if err != nil {
		warnParseFailure("Port", string(text), err)
		return err
	}
	*p = v
	return nil
}

// GetRange parses "start[-end]" into the half-open integer range
// [start, end) of type T. A bare "start" with no "-end" yields the
// single-element range [start, start+1).
func GetRange[T ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~int](s string, parse func(string) (T, error)) (lo, hi T, err error) {
	if i := strings.IndexByte(s, '-'); i >= 0 {
		lo, err = parse(s[:i])
		if err != nil {
			return 0, 0, err
		}
		hi, err = parse(s[i+1:])
		if err != nil {
			return 0, 0, err
		}
		return lo, hi, nil
	}
	lo, err = parse(s)
	if err != nil {
		return 0, 0, err
	}
	return lo, lo + 1, nil
}

func parsePort(s string) (Port, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w: bad port %q", bitframe.ErrInvalidPortString, s)
	}
	return Port(n), nil
}

// PortSliceFromStr expands a comma-separated list of ports and/or dash
// ranges ("lo-hi", half-open: [lo, hi)) into the ordered slice of Port
// values it denotes. Example: "80,443,8000-8003" -> [80, 443, 8000, 8001, 8002].
func PortSliceFromStr(s string) ([]Port, error) {
	var out []Port
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if strings.Contains(part, "-") {
			lo, hi, err := GetRange(part, parsePort)
			if err != nil {
				warnParseFailure("Port", s, err)
				return nil, err
			}
			for v := lo; v < hi; v++ {
				out = append(out, v)
			}
			continue
		}
		p, err := parsePort(part)
		if err != nil {
			warnParseFailure("Port", s, err)
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
