package bitframe

import "errors"

// Error kinds returned by the Bit Layout Engine, the address leaves and the
// Datagram Aggregator. Callers should compare with errors.Is; the library
// never terminates the process on any of these.
var (
	// Parse errors.
	ErrInvalidIPv4String = errors.New("bitframe: invalid IPv4 string")
	ErrInvalidMACString  = errors.New("bitframe: invalid MAC string")
	ErrInvalidPortString = errors.New("bitframe: invalid port string")
	ErrCIDRTooLarge      = errors.New("bitframe: CIDR prefix too large")
	ErrInsufficientBytes = errors.New("bitframe: insufficient bytes to parse record")
	ErrUnknownVariantTag = errors.New("bitframe: unknown variant tag")
	ErrInvalidHeader     = errors.New("bitframe: invalid header tag")
	ErrInvalidFooter     = errors.New("bitframe: invalid footer tag")

	// Width errors.
	ErrInvalidWidth    = errors.New("bitframe: value does not fit declared field width")
	ErrUnalignedPayload = errors.New("bitframe: byte-string field at non-byte-aligned position")

	// Capability errors.
	ErrNoAsBytesMethod = errors.New("bitframe: record exposes no as-bytes method")
	ErrNoCalcMethod    = errors.New("bitframe: header expected to contribute a derived field but exposes none")
)
