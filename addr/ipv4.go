package addr

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/bitfield"
)

// IPv4 is a 32-bit big-endian IPv4 address. It implements bitfield.Record
// as a single 32-bit unsigned-integer leaf.
type IPv4 [4]byte

// RecordKind implements bitfield.Record.
func (IPv4) RecordKind() bitfield.RecordKind { return bitfield.RecordBasic }

// Layer implements bitfield.Record.
func (IPv4) Layer() int { return 3 }

// DisplayName implements bitfield.Record.
func (IPv4) DisplayName() string { return "IPv4" }

// Fields implements bitfield.Record.
func (a *IPv4) Fields() []bitfield.Field {
	return []bitfield.Field{{
		Name:  "address",
		Kind:  bitfield.KindUint,
		Width: 32,
		Get:   func() uint64 { return uint64(binary.BigEndian.Uint32(a[:])) },
		Set:   func(v uint64) { binary.BigEndian.PutUint32(a[:], uint32(v)) },
	}}
}

// String renders a in canonical dotted-quad form.
func (a IPv4) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", a[0], a[1], a[2], a[3])
}

// MarshalText implements encoding.TextMarshaler for the textual-codec hook.
func (a IPv4) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler for the textual-codec hook.
func (a *IPv4) UnmarshalText(text []byte) error {
	v, err := IPv4FromStr(string(text))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// IPv4FromStr parses "A.B.C.D", optionally followed by "/cidr" and/or
// ":port", both of which are accepted but discarded for the single-value
// result. Returns ErrInvalidIPv4String on malformed input, after logging
// the offending string.
func IPv4FromStr(s string) (IPv4, error) {
	octets, _, _, err := splitIPv4String(s)
	if err != nil {
		warnParseFailure("IPv4", s, err)
		return IPv4{}, err
	}
	return octets, nil
}

// splitIPv4String parses the dotted-quad portion of s and, if present, the
// /cidr and :port suffixes (both optional; when both are present, /cidr
// must come before :port).
func splitIPv4String(s string) (addr IPv4, cidr int, port int, err error) {
	cidr, port = -1, -1
	rest := s
	if i := strings.IndexByte(rest, ':'); i >= 0 {
		p, perr := strconv.Atoi(rest[i+1:])
		if perr != nil || p < 0 || p > 65535 {
			return IPv4{}, 0, 0, fmt.Errorf("%w: bad port suffix in %q", bitframe.ErrInvalidIPv4String, s)
		}
		port = p
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '/'); i >= 0 {
		c, cerr := strconv.Atoi(rest[i+1:])
		if cerr != nil || c < 0 || c > 32 {
			return IPv4{}, 0, 0, fmt.Errorf("%w: bad cidr suffix in %q", bitframe.ErrInvalidIPv4String, s)
		}
		cidr = c
		rest = rest[:i]
	}
	parts := strings.Split(rest, ".")
	if len(parts) != 4 {
		return IPv4{}, 0, 0, fmt.Errorf("%w: %q", bitframe.ErrInvalidIPv4String, s)
	}
	for i, p := range parts {
		n, perr := strconv.Atoi(p)
		if perr != nil || n < 0 || n > 255 {
			return IPv4{}, 0, 0, fmt.Errorf("%w: %q", bitframe.ErrInvalidIPv4String, s)
		}
		addr[i] = byte(n)
	}
	return addr, cidr, port, nil
}

// octetRange parses "N" or "N1-N2" into an inclusive [lo, hi] pair of octet
// values in [0, 255].
func octetRange(s string) (lo, hi int, err error) {
	if i := strings.IndexByte(s, '-'); i >= 0 {
		lo, err = strconv.Atoi(s[:i])
		if err == nil {
			hi, err = strconv.Atoi(s[i+1:])
		}
	} else {
		lo, err = strconv.Atoi(s)
		hi = lo
	}
	if err != nil || lo < 0 || hi > 255 || lo > hi {
		return 0, 0, fmt.Errorf("%w: bad octet range %q", bitframe.ErrInvalidIPv4String, s)
	}
	return lo, hi, nil
}

// IPv4SliceFromStr expands a string describing more than one address into
// the slice of IPv4 values it denotes. It accepts three forms:
//
//   - "A.B.C.D/cidr" with cidr in [0,31]: every address in the subnet, in
//     numerical order. cidr > 31 returns ErrCIDRTooLarge (host routes,
//     i.e. /32, are intentionally excluded; see DESIGN.md).
//   - "A1[-A2].B1[-B2].C1[-C2].D1[-D2]": the Cartesian product of the four
//     octet ranges, outer loop on the leftmost octet.
//   - a comma-separated list of individual "A.B.C.D" addresses, returned
//     in the order given (not sorted).
func IPv4SliceFromStr(s string) ([]IPv4, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		base, cidrStr := s[:i], s[i+1:]
		cidr, err := strconv.Atoi(cidrStr)
		if err != nil || cidr < 0 {
			err := fmt.Errorf("%w: %q", bitframe.ErrInvalidIPv4String, s)
			warnParseFailure("IPv4", s, err)
			return nil, err
		}
		if cidr > 31 {
			err := fmt.Errorf("%w: /%d", bitframe.ErrCIDRTooLarge, cidr)
			warnParseFailure("IPv4", s, err)
			return nil, err
		}
		baseAddr, err := IPv4FromStr(base)
		if err != nil {
			return nil, err
		}
		return expandSubnet(baseAddr, cidr), nil
	}
	if strings.Contains(s, ",") {
		parts := strings.Split(s, ",")
		out := make([]IPv4, 0, len(parts))
		for _, p := range parts {
			a, err := IPv4FromStr(strings.TrimSpace(p))
			if err != nil {
				return nil, err
			}
			out = append(out, a)
		}
		return out, nil
	}
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		err := fmt.Errorf("%w: %q", bitframe.ErrInvalidIPv4String, s)
		warnParseFailure("IPv4", s, err)
		return nil, err
	}
	var los, his [4]int
	for i, p := range parts {
		lo, hi, err := octetRange(p)
		if err != nil {
			warnParseFailure("IPv4", s, err)
			return nil, err
		}
		los[i], his[i] = lo, hi
	}
	var out []IPv4
	for a := los[0]; a <= his[0]; a++ {
		for b := los[1]; b <= his[1]; b++ {
			for c := los[2]; c <= his[2]; c++ {
				for d := los[3]; d <= his[3]; d++ {
					out = append(out, IPv4{byte(a), byte(b), byte(c), byte(d)})
				}
			}
		}
	}
	return out, nil
}

// expandSubnet enumerates all 2^(32-cidr) addresses of the subnet
// containing base, in numerical order.
func expandSubnet(base IPv4, cidr int) []IPv4 {
	hostBits := 32 - cidr
	n := uint64(1) << uint(hostBits)
	mask := uint32(0xffffffff) << uint(hostBits)
	network := binary.BigEndian.Uint32(base[:]) & mask
	out := make([]IPv4, n)
	for i := uint64(0); i < n; i++ {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], network+uint32(i))
		out[i] = IPv4(b)
	}
	return out
}
