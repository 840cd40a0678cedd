package tcp_test

import (
	"testing"

	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
	"github.com/packetcraft/bitframe/tcp"
	"github.com/stretchr/testify/require"
)

func TestCalcLengthAndChecksum(t *testing.T) {
	h := tcp.NewHeader()
	h.SourcePort, h.DestinationPort = 1024, 80
	h.Sequence = 1
	h.Flags = tcp.FlagSYN
	h.WindowSize = 65535
	h.PseudoSource, _ = addr.IPv4FromStr("10.0.0.1")
	h.PseudoDestination, _ = addr.IPv4FromStr("10.0.0.2")
	payload := []byte("abcd")

	require.NoError(t, h.CalcLengthAndChecksum(payload))
	raw, err := bitfield.AsNetBytes(h)
	require.NoError(t, err)
	require.Equal(t, bitframe.SizeHeaderTCP, len(raw))

	var c bitframe.InternetChecksum
	c.Write(h.PseudoSource[:])
	c.Write(h.PseudoDestination[:])
	c.AddUint16(uint16(bitframe.IPProtoTCP))
	c.AddUint16(uint16(bitframe.SizeHeaderTCP + len(payload)))
	c.Write(raw)
	c.WriteOdd(payload)
	require.Equal(t, uint16(0), c.Sum16())
}

func TestRoundTrip(t *testing.T) {
	h := tcp.NewHeader()
	h.SourcePort, h.DestinationPort = 443, 51000
	h.Sequence, h.Acknowledgment = 100, 200
	h.Flags = tcp.FlagACK | tcp.FlagPSH
	h.WindowSize = 1024

	raw, err := bitfield.AsNetBytes(h)
	require.NoError(t, err)

	got := &tcp.Header{}
	require.NoError(t, bitfield.FromNetBytes(got, raw))
	require.Equal(t, h.SourcePort, got.SourcePort)
	require.Equal(t, h.DestinationPort, got.DestinationPort)
	require.Equal(t, h.Sequence, got.Sequence)
	require.Equal(t, h.Acknowledgment, got.Acknowledgment)
	require.Equal(t, h.DataOffset, got.DataOffset)
	require.Equal(t, h.Flags, got.Flags)
	require.True(t, got.Flags.Has(tcp.FlagACK))
	require.True(t, got.Flags.Has(tcp.FlagPSH))
}
