package addr_test

import (
	"testing"

	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
	"github.com/stretchr/testify/require"
)

func TestIPv4FromStrAndString(t *testing.T) {
	a, err := addr.IPv4FromStr("10.0.0.1")
	require.NoError(t, err)
	require.Equal(t, "10.0.0.1", a.String())
}

func TestIPv4FromStrAcceptsCIDRAndPortSuffix(t *testing.T) {
	a, err := addr.IPv4FromStr("192.168.1.5/24")
	require.NoError(t, err)
	require.Equal(t, "192.168.1.5", a.String())

	a, err = addr.IPv4FromStr("192.168.1.5:8080")
	require.NoError(t, err)
	require.Equal(t, "192.168.1.5", a.String())
}

func TestIPv4FromStrInvalid(t *testing.T) {
	_, err := addr.IPv4FromStr("not-an-ip")
	require.Error(t, err)
}

func TestIPv4RoundTripWire(t *testing.T) {
	a, err := addr.IPv4FromStr("203.0.113.7")
	require.NoError(t, err)
	raw, err := bitfield.AsNetBytes(&a)
	require.NoError(t, err)
	require.Equal(t, []byte{203, 0, 113, 7}, raw)

	var got addr.IPv4
	require.NoError(t, bitfield.FromNetBytes(&got, raw))
	require.Equal(t, a, got)
}

func TestIPv4SliceFromStrSubnet24(t *testing.T) {
	addrs, err := addr.IPv4SliceFromStr("10.0.0.0/24")
	require.NoError(t, err)
	require.Len(t, addrs, 256)
	require.Equal(t, "10.0.0.0", addrs[0].String())
	require.Equal(t, "10.0.0.255", addrs[255].String())
}

func TestIPv4SliceFromStrSubnet30(t *testing.T) {
	addrs, err := addr.IPv4SliceFromStr("192.168.1.0/30")
	require.NoError(t, err)
	want := []string{"192.168.1.0", "192.168.1.1", "192.168.1.2", "192.168.1.3"}
	require.Len(t, addrs, len(want))
	for i, w := range want {
		require.Equal(t, w, addrs[i].String())
	}
}

func TestIPv4SliceFromStrSubnetTooLarge(t *testing.T) {
	_, err := addr.IPv4SliceFromStr("10.0.0.0/32")
	require.Error(t, err)
}

// A dotted string with a range like "10.0.0.1-3.0.5" splits into six
// dot-separated parts, not four, so it can't be the octet-range form;
// "10.1-3.0.5" (second octet ranging 1-3, fourth octet fixed at 5) is
// the form that actually parses, producing three addresses. See
// DESIGN.md.
func TestIPv4SliceFromStrOctetRange(t *testing.T) {
	addrs, err := addr.IPv4SliceFromStr("10.1-3.0.5")
	require.NoError(t, err)
	want := []string{"10.1.0.5", "10.2.0.5", "10.3.0.5"}
	require.Len(t, addrs, len(want))
	for i, w := range want {
		require.Equal(t, w, addrs[i].String())
	}
}

func TestIPv4SliceFromStrCommaList(t *testing.T) {
	addrs, err := addr.IPv4SliceFromStr("10.0.0.1,10.0.0.2")
	require.NoError(t, err)
	require.Len(t, addrs, 2)
	require.Equal(t, "10.0.0.1", addrs[0].String())
	require.Equal(t, "10.0.0.2", addrs[1].String())
}

func TestMACFromStrAllSeparators(t *testing.T) {
	want := "AA:BB:CC:DD:EE:FF"
	for _, s := range []string{
		"aa:bb:cc:dd:ee:ff",
		"aa-bb-cc-dd-ee-ff",
		"aa bb cc dd ee ff",
		"aabbccddeeff",
	} {
		m, err := addr.MACFromStr(s)
		require.NoError(t, err, s)
		require.Equal(t, want, m.String(), s)
	}
}

func TestMACFromStrInvalid(t *testing.T) {
	_, err := addr.MACFromStr("not-a-mac")
	require.Error(t, err)
}

func TestMACRoundTripWire(t *testing.T) {
	m, err := addr.MACFromStr("aa:bb:cc:dd:ee:ff")
	require.NoError(t, err)
	raw, err := bitfield.AsNetBytes(&m)
	require.NoError(t, err)
	require.Len(t, raw, 6)

	var got addr.MAC
	require.NoError(t, bitfield.FromNetBytes(&got, raw))
	require.Equal(t, m, got)
}

func TestPortSliceFromStr(t *testing.T) {
	ports, err := addr.PortSliceFromStr("80,443,8000-8003")
	require.NoError(t, err)
	want := []addr.Port{80, 443, 8000, 8001, 8002}
	require.Equal(t, want, ports)
}

func TestPortRoundTripWire(t *testing.T) {
	p := addr.Port(1024)
	raw, err := bitfield.AsNetBytes(&p)
	require.NoError(t, err)
	require.Equal(t, []byte{0x04, 0x00}, raw)

	var got addr.Port
	require.NoError(t, bitfield.FromNetBytes(&got, raw))
	require.Equal(t, p, got)
}
