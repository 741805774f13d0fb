// Package blake2 hosts an implementation of BLAKE2b-512, the 64-byte digest
// variant of the BLAKE2b secure hashing algorithm optimized for 64-bit
// platforms, and the b2sum command built on it.
package blake2

//go:generate python3 gen_vectors.py testdata/blake2b-kat.json
