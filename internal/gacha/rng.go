package gacha

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// RandomSource yields uniform floats in [0, 1).
type RandomSource interface {
	Float64() float64
}

// NewRNG returns the source for one request. A nil seed draws from the
// system CSPRNG; a set seed replays the same pulls on every call.
func NewRNG(seed *uint64) RandomSource {
	if seed == nil {
		return systemRNG{}
	}
	// the stream is fixed so a seed alone identifies a run
	return rand.New(rand.NewPCG(*seed, 0x5eed))
}

type systemRNG struct{}

func (systemRNG) Float64() float64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Float64()
	}
	// 53 bits fill the mantissa
	return float64(binary.LittleEndian.Uint64(buf[:])>>11) / (1 << 53)
}
