package amd64

import "encoding/binary"

// asm is the mechanical byte-assembly sub-layer: nothing here knows
// about transitions or graph kinds, only about encoding one x86-64
// instruction at a time. encoder.go is the only caller.

func modrm(mod, reg, rm int) byte {
	return byte(mod<<6 | (reg&7)<<3 | (rm & 7))
}

func sib(scale, index, base int) byte {
	return byte(scale<<6 | (index&7)<<3 | (base & 7))
}

// vex3 emits the three-byte VEX prefix (C4 ...). The two-byte form
// (C5 ...) is never emitted: scalar SSE-class ops here only ever touch
// xmm0-xmm15 and GPRs 0-15, so the three-byte form is used uniformly
// for simplicity and to keep the X/B and W bits available.
func vex3(rexR, rexX, rexB bool, mmmmm byte, rexW bool, vvvv byte, l byte, pp byte) []byte {
	b1 := byte(0xC4)
	b2 := (boolBit(!rexR) << 7) | (boolBit(!rexX) << 6) | (boolBit(!rexB) << 5) | (mmmmm & 0x1F)
	b3 := (boolBit(rexW) << 7) | ((^vvvv & 0xF) << 3) | ((l & 1) << 2) | (pp & 3)
	return []byte{b1, b2, b3}
}

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// reg8 reports whether a logical register index needs the extended
// (REX.R/X/B) bit set — true for xmm8-xmm15 and r8-r15.
func reg8(r int) bool { return r >= 8 }

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func u64le(v uint64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b
}

// gp register encodings used by the prologue/epilogue and memory
// addressing. Named for readability; values match the x86-64 encoding.
const (
	gpRAX = 0
	gpRSP = 4
	gpRBP = 5
	gpRDI = 7
	gpRSI = 6
	gpRDX = 2
	gpR12 = 12
	gpR13 = 13
	gpR14 = 14
)
