package ethernet

import "hash/crc32"

// crcTable is the IEEE 802.3 CRC-32 table (polynomial 0xEDB88320,
// reflected), the same table used by gzip and Ethernet frame checking
// generally.
var crcTable = crc32.MakeTable(crc32.IEEE)

// CRC32 computes the Ethernet Frame Check Sequence over data: a CRC-32
// using the IEEE 802.3 polynomial, little-endian byte order, initial value
// 0xFFFFFFFF and final XOR 0xFFFFFFFF (exactly what crc32.Checksum with
// crc32.IEEE already implements).
func CRC32(data []byte) uint32 {
	return crc32.Checksum(data, crcTable)
}
