package wifi_test

import (
	"testing"

	"github.com/packetcraft/bitframe"
	"github.com/packetcraft/bitframe/addr"
	"github.com/packetcraft/bitframe/bitfield"
	"github.com/packetcraft/bitframe/wifi"
	"github.com/stretchr/testify/require"
)

func TestHeaderRoundTrip(t *testing.T) {
	a1, _ := addr.MACFromStr("aa:aa:aa:aa:aa:aa")
	a2, _ := addr.MACFromStr("bb:bb:bb:bb:bb:bb")
	a3, _ := addr.MACFromStr("cc:cc:cc:cc:cc:cc")
	a4, _ := addr.MACFromStr("dd:dd:dd:dd:dd:dd")
	h := &wifi.Header{
		FrameControl: 0x0208,
		DurationID:   0x1234,
		Address1:     a1, Address2: a2, Address3: a3, Address4: a4,
		SequenceCtrl: 0x5678,
	}
	raw, err := bitfield.AsNetBytes(h)
	require.NoError(t, err)
	require.Equal(t, bitframe.SizeHeaderWiFi, len(raw))

	got := &wifi.Header{}
	require.NoError(t, bitfield.FromNetBytes(got, raw))
	require.Equal(t, *h, *got)
}

func TestFooterContributesNoBits(t *testing.T) {
	f := &wifi.Footer{}
	require.Equal(t, 0, bitfield.BitWidth(f))
}
