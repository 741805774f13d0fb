// Package blake2b implements the BLAKE2b-512 secure hashing algorithm in its
// default configuration: unkeyed, sequential, with a 64-byte digest.
package blake2b

import (
	"hash"
	"runtime"

	"github.com/katzenpost/hpqc/util"
)

const (
	// Size of a BLAKE2b-512 digest in bytes.
	Size = 64
	// Size of a block buffer in bytes.
	BlockSize = 128
	// Size of a packed parameter block in bytes.
	ParamSize = 64
	// Size of the salt field, in bytes.
	SaltLength = 16
	// Size of the personalization field, in bytes.
	PersonalLength = 16
	// Number of G function rounds for BLAKE2b.
	RoundCount = 12
)

const errInertContext = "blake2b: use of finalized or uninitialized context"

// Context is the streaming state of a single BLAKE2b computation. It must be
// created with Init and must not be used after Final. A Context is not safe
// for concurrent use.
type Context struct {
	h [8]uint64 // chaining state
	t [2]uint64 // bytes compressed so far, low word first
	f [2]uint64 // finalization flags

	buf    [BlockSize]byte // bytes not yet compressed
	buflen int

	ready bool
}

// Init returns a context for BLAKE2b-512 with the default parameter block.
func Init() *Context {
	ctx := new(Context)
	ctx.Reset()
	return ctx
}

// Reset reinitializes ctx with the default parameter block, discarding any
// absorbed input. A finalized context may be reused after Reset.
func (ctx *Context) Reset() {
	p := DefaultParameterBlock()
	initFromParams(ctx, &p)
}

// After this function returns, the ParameterBlock can be discarded.
func initFromParams(ctx *Context, p *ParameterBlock) {
	*ctx = Context{}
	paramBytes := p.Marshal()
	for i := range ctx.h {
		ctx.h[i] = iv[i] ^ u64LE(paramBytes[i*8:i*8+8])
	}
	ctx.ready = true
}

func (ctx *Context) incrementCounter(inc uint64) {
	ctx.t[0] += inc
	if ctx.t[0] < inc {
		ctx.t[1]++
	}
}

// Update absorbs data into the running hash. It may be called any number of
// times before Final.
func (ctx *Context) Update(data []byte) {
	if !ctx.ready {
		panic(errInertContext)
	}

	for len(data) > 0 {
		fill := BlockSize - ctx.buflen

		// Compress only when more input follows the full buffer, so the
		// last block is held back for Final.
		if len(data) <= fill {
			ctx.buflen += copy(ctx.buf[ctx.buflen:], data)
			return
		}

		copy(ctx.buf[ctx.buflen:], data[:fill])
		ctx.incrementCounter(BlockSize)
		compress(&ctx.h, &ctx.t, &ctx.f, &ctx.buf)
		ctx.buflen = 0
		data = data[fill:]
	}
}

// Final pads and compresses the last block and returns the digest. The
// context is wiped before returning and must be Reset before any further use.
func (ctx *Context) Final() (out [Size]byte) {
	if !ctx.ready {
		panic(errInertContext)
	}

	ctx.incrementCounter(uint64(ctx.buflen))
	ctx.f[0] = 0xFFFFFFFFFFFFFFFF
	pad := ctx.buf[ctx.buflen:]
	for i := range pad {
		pad[i] = 0
	}
	compress(&ctx.h, &ctx.t, &ctx.f, &ctx.buf)

	for i, w := range ctx.h {
		putU64LE(out[i*8:i*8+8], w)
	}

	ctx.wipe()
	return out
}

func (ctx *Context) wipe() {
	util.ExplicitBzero(ctx.buf[:])
	for i := range ctx.h {
		ctx.h[i] = 0
	}
	ctx.t[0], ctx.t[1] = 0, 0
	ctx.f[0], ctx.f[1] = 0, 0
	ctx.buflen = 0
	ctx.ready = false
	runtime.KeepAlive(ctx)
}

// Sum512 returns the BLAKE2b-512 checksum of the data.
func Sum512(data []byte) [Size]byte {
	var ctx Context
	ctx.Reset()
	ctx.Update(data)
	return ctx.Final()
}

// Digest adapts a Context to hash.Hash.
type Digest struct {
	ctx Context
}

var _ hash.Hash = (*Digest)(nil)

// New returns a new hash.Hash computing the BLAKE2b-512 checksum.
func New() hash.Hash {
	return NewDigest()
}

// NewDigest returns a new BLAKE2b-512 Digest.
func NewDigest() *Digest {
	d := new(Digest)
	d.ctx.Reset()
	return d
}

// Write adds more data to the running hash. It never returns an error.
func (d *Digest) Write(p []byte) (int, error) {
	d.ctx.Update(p)
	return len(p), nil
}

// Sum appends the current hash to b and returns the resulting slice.
// It does not change the underlying hash state: the final block is
// compressed on a copy of the context, and the copy is wiped.
func (d *Digest) Sum(b []byte) []byte {
	ctx := d.ctx
	sum := ctx.Final()
	return append(b, sum[:]...)
}

// Reset resets the Hash to its initial state.
func (d *Digest) Reset() { d.ctx.Reset() }

// Size returns the digest output size in bytes.
func (d *Digest) Size() int { return Size }

// BlockSize returns the hash's underlying block size. The Write method must be
// able to accept any amount of data, but it may operate more efficiently if
// all writes are a multiple of the block size.
func (d *Digest) BlockSize() int { return BlockSize }
