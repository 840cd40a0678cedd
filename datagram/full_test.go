package datagram_test

import (
	"testing"

	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
	"github.com/packetcraft/bitframe/datagram"
	"github.com/packetcraft/bitframe/ethernet"
	"github.com/packetcraft/bitframe/ipv4"
	"github.com/packetcraft/bitframe/udp"
	"github.com/stretchr/testify/require"
)

func TestEndToEndEthIPv4UDP(t *testing.T) {
	d, err := datagram.Init(2, []string{"eth", "ip", "udp"}, []byte("Hello World!"), "eth")
	require.NoError(t, err)

	eth := d.L2Header.(*ethernet.Header)
	eth.Source, _ = addr.MACFromStr("aa:aa:aa:aa:aa:aa")
	eth.Destination, _ = addr.MACFromStr("bb:bb:bb:bb:bb:bb")
	eth.EtherType = bitframe.EtherTypeIPv4

	ip := d.L3Header.(*ipv4.Header)
	ip.Source, _ = addr.IPv4FromStr("10.0.0.1")
	ip.Destination, _ = addr.IPv4FromStr("10.0.0.2")
	ip.Protocol = bitframe.IPProtoUDP

	u := d.L4Header.(*udp.Header)
	u.SourcePort, u.DestinationPort = 1024, 1025

	require.NoError(t, d.CalcFromPayload(nil))

	raw, err := d.AsNetBytes()
	require.NoError(t, err)
	require.Zero(t, len(raw)%bitframe.DatagramAlignTo)

	// re-parse each layer back out of the wire image and check it against
	// what was set.
	gotEth := &ethernet.Header{}
	require.NoError(t, bitfield.FromNetBytes(gotEth, raw[:bitframe.SizeHeaderEth]))
	require.Equal(t, *eth, *gotEth)

	off := bitframe.SizeHeaderEth
	gotIP := &ipv4.Header{}
	require.NoError(t, bitfield.FromNetBytes(gotIP, raw[off:off+bitframe.SizeHeaderIPv4]))
	require.Equal(t, ip.Source, gotIP.Source)
	require.Equal(t, ip.Destination, gotIP.Destination)
	require.Equal(t, ip.Protocol, gotIP.Protocol)
	require.Equal(t, ip.TotalLength, gotIP.TotalLength)

	off += bitframe.SizeHeaderIPv4
	gotUDP := &udp.Header{}
	require.NoError(t, bitfield.FromNetBytes(gotUDP, raw[off:off+bitframe.SizeHeaderUDP]))
	require.Equal(t, u.SourcePort, gotUDP.SourcePort)
	require.Equal(t, u.DestinationPort, gotUDP.DestinationPort)
	require.Equal(t, u.Length, gotUDP.Length)

	off += bitframe.SizeHeaderUDP
	footerOff := len(raw) - bitframe.SizeFooterEth
	payload := raw[off:footerOff]
	require.Equal(t, []byte("Hello World!"), payload[:len("Hello World!")])

	gotFooter := &ethernet.Footer{}
	require.NoError(t, bitfield.FromNetBytes(gotFooter, raw[footerOff:]))
	require.Equal(t, ethernet.CRC32(raw[:footerOff]), gotFooter.CRC)
}

func TestDefaultL2IsEthernetWithZeroDestination(t *testing.T) {
	d, err := datagram.Init(3, []string{"ip", "udp"}, []byte("x"), "eth")
	require.NoError(t, err)
	require.Equal(t, "eth", d.L2Tag)

	eth := d.L2Header.(*ethernet.Header)
	require.Equal(t, addr.MAC{}, eth.Destination)

	require.NoError(t, d.CalcFromPayload(nil))
	_, err = d.AsNetBytes()
	require.NoError(t, err)
}

func TestInitUnknownHeaderTag(t *testing.T) {
	_, err := datagram.Init(3, []string{"bogus"}, nil, "eth")
	require.Error(t, err)
}

func TestInitUnknownFooterTag(t *testing.T) {
	_, err := datagram.Init(3, []string{"ip"}, nil, "bogus")
	require.Error(t, err)
}
