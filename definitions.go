package bitframe

// EtherType identifies the protocol carried in an Ethernet frame's payload,
// or, for values of 1500 and under, the size of an untagged 802.3 frame's
// payload. See [EtherType.IsSize].
type EtherType uint16

// IsSize returns true if the EtherType is actually the size of the payload
// and should NOT be interpreted as an EtherType.
func (et EtherType) IsSize() bool { return et <= 1500 }

// Ethernet type values used by the Frame and Packet catalog.
const (
	EtherTypeIPv4  EtherType = 0x0800 // IPv4
	EtherTypeARP   EtherType = 0x0806 // ARP
	EtherTypeIPv6  EtherType = 0x86DD // IPv6
	EtherTypeVLAN  EtherType = 0x8100 // VLAN
	EtherTypeEAPoL EtherType = 0x888E // EAPoL

	// MinEthPayload is the minimum payload size for an Ethernet frame,
	// assuming no 802.1Q VLAN tags are present.
	MinEthPayload = 46
)

// IPToS represents the Traffic Class (a.k.a Type of Service) octet of an
// IPv4 header.
type IPToS uint8

// DS returns the top 6 bits of the IPv4 ToS, the Differentiated Services
// Code Point used to classify packets.
func (tos IPToS) DS() uint8 { return uint8(tos) >> 2 }

// ECN is the Explicit Congestion Notification field.
func (tos IPToS) ECN() uint8 { return uint8(tos) & 0b11 }

// IPv4Flags holds the flags+fragment-offset field of an IPv4 header.
type IPv4Flags uint16

// DontFragment reports whether the DF bit is set.
func (f IPv4Flags) DontFragment() bool { return f&0x4000 != 0 }

// MoreFragments reports whether the MF bit is set.
func (f IPv4Flags) MoreFragments() bool { return f&0x2000 != 0 }

// FragmentOffset returns the fragment offset in units of 8 bytes.
func (f IPv4Flags) FragmentOffset() uint16 { return uint16(f) & 0x1fff }

// Fixed header sizes, in bytes, for the "no options" schemas named by the
// Frame and Packet catalog.
const (
	SizeHeaderEth   = 14 // dst MAC + src MAC + ethertype, no VLAN tag
	SizeFooterEth   = 4  // CRC-32
	SizeHeaderIPv4  = 20 // no options
	SizeHeaderICMP  = 8  // type, code, checksum, rest-of-header
	SizeHeaderUDP   = 8
	SizeHeaderTCP   = 20 // no options
	SizeHeaderWiFi  = 30 // fixed MAC-header portion modeled by this catalog
	DatagramAlignTo = 4  // as-net-bytes of a Full datagram is a multiple of this
)

// IPProto represents the IP protocol number carried in an IPv4 header's
// Protocol field.
type IPProto uint8

// IP protocol numbers referenced by the catalog.
const (
	IPProtoICMP IPProto = 1  // Internet Control Message [RFC792]
	IPProtoTCP  IPProto = 6  // Transmission Control [RFC793]
	IPProtoUDP  IPProto = 17 // User Datagram [RFC768]
)
