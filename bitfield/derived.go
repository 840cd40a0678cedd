package bitfield

// The Derived-Field Protocol: a header Record may optionally expose
// one of the three capabilities below. The Datagram Aggregator dispatches
// to whichever one a given header implements via a type assertion; a
// header implementing none of them is valid and is simply skipped.

// LengthChecksumCalculator is implemented by UDP- and TCP-shaped headers:
// their length field covers header+payload bytes, and their checksum
// covers a pseudo-header, the header itself (checksum field zeroed during
// computation) and the payload.
type LengthChecksumCalculator interface {
	CalcLengthAndChecksum(payload []byte) error
}

// HeaderChecksumCalculator is implemented by IPv4-shaped headers: their
// total-length field covers header+payload bytes, and their checksum
// covers only the header (checksum field zeroed during computation).
type HeaderChecksumCalculator interface {
	CalcLengthAndHeaderChecksum(payload []byte) error
}

// CRCCalculator is implemented by link-layer footers: the CRC covers the
// frame bytes preceding the footer, excluding the footer itself.
type CRCCalculator interface {
	CalcCRC(frameExcludingFooter []byte) error
}
