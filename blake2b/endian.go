package blake2b

import "encoding/binary"

// BLAKE2b is defined over little-endian words regardless of host order.

func u64LE(b []byte) uint64 {
	return binary.LittleEndian.Uint64(b)
}

func putU64LE(b []byte, v uint64) {
	binary.LittleEndian.PutUint64(b, v)
}

func putU32LE(b []byte, v uint32) {
	binary.LittleEndian.PutUint32(b, v)
}
