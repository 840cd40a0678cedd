package udp_test

import (
	"testing"

	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
	"github.com/packetcraft/bitframe/udp"
	"github.com/stretchr/testify/require"
)

func TestCalcLengthAndChecksum(t *testing.T) {
	h := &udp.Header{SourcePort: 1024, DestinationPort: 1025}
	h.PseudoSource, _ = addr.IPv4FromStr("10.0.0.1")
	h.PseudoDestination, _ = addr.IPv4FromStr("10.0.0.2")
	payload := []byte("abcd")

	require.NoError(t, h.CalcLengthAndChecksum(payload))
	require.Equal(t, uint16(bitframe.SizeHeaderUDP+len(payload)), h.Length)
	require.Equal(t, uint16(12), h.Length)

	raw, err := bitfield.AsNetBytes(h)
	require.NoError(t, err)
	require.Equal(t, bitframe.SizeHeaderUDP, len(raw))

	var c bitframe.InternetChecksum
	c.Write(h.PseudoSource[:])
	c.Write(h.PseudoDestination[:])
	c.AddUint16(uint16(bitframe.IPProtoUDP))
	c.AddUint16(h.Length)
	c.Write(raw)
	c.WriteOdd(payload)
	require.Equal(t, uint16(0), c.Sum16())
}

func TestRoundTrip(t *testing.T) {
	h := &udp.Header{SourcePort: 53, DestinationPort: 5353, Length: 8, Checksum: 0xabcd}
	raw, err := bitfield.AsNetBytes(h)
	require.NoError(t, err)

	got := &udp.Header{}
	require.NoError(t, bitfield.FromNetBytes(got, raw))
	require.Equal(t, h.SourcePort, got.SourcePort)
	require.Equal(t, h.DestinationPort, got.DestinationPort)
	require.Equal(t, h.Length, got.Length)
	require.Equal(t, h.Checksum, got.Checksum)
}
