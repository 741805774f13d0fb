package blake2b

// ParameterBlock holds the user-visible parameters of a BLAKE2b instance. The
// packed block is XOR'd with the IV at the beginning of the hash. Only the
// sequential, unkeyed, 64-byte configuration is used by this package; the
// remaining fields are defined so the layout is complete.
type ParameterBlock struct {
	DigestLength byte     // 0
	KeyLength    byte     // 1
	Fanout       byte     // 2
	Depth        byte     // 3
	LeafLength   uint32   // 4-7
	NodeOffset   uint64   // 8-15
	NodeDepth    byte     // 16
	InnerLength  byte     // 17
	reserved     [14]byte // 18-31
	Salt         [SaltLength]byte
	Personal     [PersonalLength]byte
}

// DefaultParameterBlock returns the parameters for unkeyed sequential
// BLAKE2b-512.
func DefaultParameterBlock() ParameterBlock {
	return ParameterBlock{
		DigestLength: Size,
		Fanout:       1,
		Depth:        1,
	}
}

// Marshal packs the parameter block.
func (p *ParameterBlock) Marshal() [ParamSize]byte {
	var buf [ParamSize]byte
	buf[0] = p.DigestLength
	buf[1] = p.KeyLength
	buf[2] = p.Fanout
	buf[3] = p.Depth
	putU32LE(buf[4:8], p.LeafLength)
	putU64LE(buf[8:16], p.NodeOffset)
	buf[16] = p.NodeDepth
	buf[17] = p.InnerLength
	copy(buf[18:32], p.reserved[:])
	copy(buf[32:48], p.Salt[:])
	copy(buf[48:64], p.Personal[:])
	return buf
}
