// Package hashtable implements a chained hash table with division hashing
// and prime-based growth, used as the side-index of an indexed heap.
package hashtable

// primeSequence is the ordered sequence of prime slot counts a table grows
// through, approximately doubling in magnitude and chosen to avoid
// hashing regularities near powers of 2 and 10. It is organized in groups
// of increasing bit width; growth advances sequentially through it and,
// implicitly, through the groups.
//
// Grounded in the C_PRIME_PARTS table of ht-divchn-pthread.c. The C source
// packs each prime into 16-bit "parts" (build_prime/is_overflow) because
// C89/C90 has no portable 64-bit integer literal; Go has native uint64
// literals, so the primes are listed directly and the packing machinery is
// not carried over — only the growth semantics (groups of increasing
// width, sequential advance, saturate at the largest representable prime)
// are.
var primeSequence = []uint64{
	// group 0: 16-bit-ish primes
	1543, 3119, 6211, 12343, 23981, 48673,
	// group 1: ~32-bit primes
	88843, 186581, 377369, 786551, 1483331, 3219497, 6278177, 12538919,
	25166719, 51331771, 112663669, 211326637, 412653239, 785367311,
	1611612763, 3221225479,
	// group 2: ~48-bit primes
	6442451311, 12881269573, 25542415651, 51713873269, 119353582331,
	211752305939, 417969972941, 817459404833, 1621224516137,
	3253374675631, 6594291673951, 13349461912351, 26380589320219,
	52758518323127, 118691918825723, 214182177768131,
	// group 3: ~64-bit primes
	419189283369523, 832735214133421, 1672538661088171, 3158576518771277,
	6692396525189279, 13791536538127669, 26532115188884581,
	55793289756397591, 113545326073368661, 217449629757435791,
	431794910914467367, 841413987972987841, 1755714234418853843,
	3358355678469146183, 6884922145916737697, 15769474759331449193,
}
