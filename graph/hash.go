package graph

import (
	"encoding/binary"
	"math"
	"math/rand"
)

// modulusP is the prime 2^31-1 used throughout the structural hash
// scheme. Commutative/associative regroupings of + and * produce the
// same residue mod modulusP, which is exactly the property CSE needs.
const modulusP int64 = (1 << 31) - 1

// hashZero and hashOne are the canonical hashes of the Zero and One
// leaves. They must be stable for the process lifetime (an invariant
// of the package, not just an implementation detail) because the
// scheduler's CSE pass keys on Hash.
const (
	hashZero int32 = 0
	hashOne  int32 = 1
)

func reduceMod(v int64) int32 {
	v %= modulusP
	if v < 0 {
		v += modulusP
	}
	return int32(v)
}

// randomHash draws a Variable leaf's hash uniformly from [0, modulusP).
func randomHash(rng *rand.Rand) int32 {
	if rng == nil {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}
	return int32(rng.Int63n(modulusP))
}

func addHash(a, b int32) int32 {
	return reduceMod(int64(a) + int64(b))
}

func subHash(a, b int32) int32 {
	return reduceMod(int64(a) - int64(b))
}

func mulHash(a, b int32) int32 {
	return reduceMod(int64(a) * int64(b))
}

func negateHash(a int32) int32 {
	return reduceMod(-int64(a))
}

// transcendentalHash mixes a distinguishing prefix ("sin"/"cos") with
// the operand's hash using DJB2, so that sin(x) and cos(x) never
// collide with each other or with plain arithmetic on x — DJB2 breaks
// the symmetry the modular +/- scheme would otherwise preserve. The
// 64-bit accumulator is intentionally truncated to 32 bits (with
// possible sign changes): acceptable for CSE, not a cryptographic
// hash, per design note in DESIGN.md.
func transcendentalHash(prefix string, operand int32) int32 {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], uint32(operand))
	return djb2(prefix, buf[:])
}

// extCallHash mixes the function name with every argument hash so
// that distinct external calls (or the same call over different
// arguments) never collide with ordinary arithmetic.
func extCallHash(name string, argHashes []int32) int32 {
	buf := make([]byte, 4*len(argHashes))
	for i, h := range argHashes {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(h))
	}
	return djb2("ext:"+name, buf)
}

// hashConstant derives a deterministic hash from a constant's IEEE-754
// bit pattern, so two Constant nodes built independently with the same
// value still collide (and are merged by CSE) without needing random
// seeding the way Variable leaves do.
func hashConstant(v float64) int32 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
	return djb2("const", buf[:])
}

// djb2 is Bernstein's hash: h = h*33 + c, seeded with 5381, run over
// prefix then data, truncated to a signed 32-bit result.
func djb2(prefix string, data []byte) int32 {
	var h uint64 = 5381
	for i := 0; i < len(prefix); i++ {
		h = h*33 + uint64(prefix[i])
	}
	for _, b := range data {
		h = h*33 + uint64(b)
	}
	return int32(uint32(h))
}
