package ir

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

// Shared seed so equal values hash equal across calls within one
// process.
var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of v. Values that compare equal hash
// equal; the seed is fresh each process start.
func (v Value) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)

	h.WriteByte(byte(v.Type))
	switch v.Type {
	case UndefinedType, NullType:
	case BoolType:
		if v.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case IntType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], uint64(v.Int))
		h.Write(b[:])
	case FloatType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(v.Float))
		h.Write(b[:])
	case StringType:
		h.WriteString(v.String)
	case ArrayType:
		var b [8]byte
		if v.Array != nil {
			for _, s := range v.Array.Values {
				binary.LittleEndian.PutUint64(b[:], s.Hash())
				h.Write(b[:])
			}
		}
	case ObjectType:
		var b [8]byte
		if v.Object != nil {
			for _, k := range v.Object.Keys() {
				h.WriteString(k)
				binary.LittleEndian.PutUint64(b[:], v.Object.Fields[k].Hash())
				h.Write(b[:])
			}
		}
	}
	return h.Sum64()
}
