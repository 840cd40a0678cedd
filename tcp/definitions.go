package tcp

// Flags holds the eight control bits of a TCP header (RFC 793, plus the
// RFC 3168 ECN-Echo and CWR bits).
type Flags uint8

// TCP control bits.
const (
	FlagFIN Flags = 1 << iota // no more data from sender
	FlagSYN                   // synchronize sequence numbers
	FlagRST                   // reset the connection
	FlagPSH                   // push function
	FlagACK                   // acknowledgment field significant
	FlagURG                   // urgent pointer field significant
	FlagECE                   // ECN-Echo
	FlagCWR                   // congestion window reduced
)

// Has reports whether all bits set in mask are also set in f.
func (f Flags) Has(mask Flags) bool { return f&mask == mask }
