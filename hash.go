package treeflat

import (
	"encoding/binary"
	"hash/maphash"
)

// specSeed keeps Hash stable across Spec values within a process.
var specSeed = maphash.MakeSeed()

// Hash returns a 64-bit structural hash of the spec, stable for the
// lifetime of the process. Equal specs hash equally; child hashes are
// combined order-dependently. It panics if s is nil.
func (s *Spec) Hash() uint64 {
	if s == nil {
		panic("treeflat: Hash called on nil spec")
	}
	var h maphash.Hash
	h.SetSeed(specSeed)
	h.WriteByte(byte(s.kind))
	if s.kind == LeafKind {
		return h.Sum64()
	}
	h.WriteString(s.typ)
	h.WriteByte(0)
	if s.ctx != nil {
		// Context hashing goes through the rendering, which equal
		// contexts share.
		h.WriteString(renderContext(s.ctx))
	}
	h.WriteByte(0)
	var b [8]byte
	for _, c := range s.children {
		binary.LittleEndian.PutUint64(b[:], c.Hash())
		h.Write(b[:])
	}
	return h.Sum64()
}
