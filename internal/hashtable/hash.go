package hashtable

import "math/bits"

// memMod computes H(key) mod p, where H consumes key as a big integer in
// byte order, applying ret = (ret*256 + b) mod p for each byte b. This is
// the division method of ht-divchn-pthread.c's hash() (fast_mem_mod),
// grounded directly in utilities-mod.c's mem_mod.
//
// fastBound bounds the range of p for which ret*256+255 cannot overflow a
// uint64 accumulator, enabling a plain '%' fast path; above that bound the
// slower, overflow-safe path uses a 128-bit multiply and divide.
const fastBound = 1 << 56

func memMod(key []byte, p uint64) uint64 {
	if p == 1 {
		return 0
	}
	var h uint64
	if p <= fastBound {
		for _, b := range key {
			h = (h*256 + uint64(b)) % p
		}
		return h
	}
	for _, b := range key {
		hi, lo := bits.Mul64(h, 256)
		var carry uint64
		lo, carry = bits.Add64(lo, uint64(b), 0)
		hi += carry
		_, h = bits.Div64(hi, lo, p)
	}
	return h
}
