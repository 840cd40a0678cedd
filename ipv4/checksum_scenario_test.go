package ipv4_test

// This exercises checksum correctness directly at the header level
// (IPv4 + UDP, no link layer): a src/dst of 10.0.0.1/10.0.0.2, UDP
// ports 1024→1025, and a 4-byte payload "abcd" must produce an IPv4
// total length of 32 and a UDP length of 12, with both checksums
// verifying to zero over their own wire images.

import (
	"testing"

	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
	"github.com/packetcraft/bitframe/ipv4"
	"github.com/packetcraft/bitframe/udp"
	"github.com/stretchr/testify/require"
)

func TestIPv4UDPChecksumScenario(t *testing.T) {
	payload := []byte("abcd")

	u := &udp.Header{SourcePort: 1024, DestinationPort: 1025}
	u.PseudoSource, _ = addr.IPv4FromStr("10.0.0.1")
	u.PseudoDestination, _ = addr.IPv4FromStr("10.0.0.2")
	require.NoError(t, u.CalcLengthAndChecksum(payload))
	require.Equal(t, uint16(12), u.Length)

	udpWire, err := bitfield.AsNetBytes(u)
	require.NoError(t, err)
	var udpChk bitframe.InternetChecksum
	udpChk.Write(u.PseudoSource[:])
	udpChk.Write(u.PseudoDestination[:])
	udpChk.AddUint16(uint16(bitframe.IPProtoUDP))
	udpChk.AddUint16(u.Length)
	udpChk.Write(udpWire)
	udpChk.WriteOdd(payload)
	require.Equal(t, uint16(0), udpChk.Sum16())

	ip := ipv4.NewHeader()
	ip.Source = u.PseudoSource
	ip.Destination = u.PseudoDestination
	ip.Protocol = bitframe.IPProtoUDP
	l3Payload := append(udpWire, payload...)
	require.NoError(t, ip.CalcLengthAndHeaderChecksum(l3Payload))
	require.Equal(t, uint16(32), ip.TotalLength)

	ipWire, err := bitfield.AsNetBytes(ip)
	require.NoError(t, err)
	var ipChk bitframe.InternetChecksum
	ipChk.Write(ipWire)
	require.Equal(t, uint16(0), ipChk.Sum16())
}
