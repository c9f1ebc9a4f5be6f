package geo

import (
	"encoding/binary"
	"encoding/hex"
	"math"

	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a BLAKE2b-256 digest of the wall table in index order.
// Scoreboard runs store it so that scores from different layouts are never compared.
func (idx *Index) Fingerprint() string {
	h, _ := blake2b.New256(nil) // nil key never errors

	var buf [8]byte
	put := func(f float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
		h.Write(buf[:])
	}
	for _, w := range idx.walls {
		put(w.CenterX)
		put(w.CenterZ)
		put(w.HalfWidth)
		put(w.HalfDepth)
		put(w.Height)
		h.Write([]byte{byte(w.Zone)})
	}
	put(idx.halfExtent)

	return hex.EncodeToString(h.Sum(nil))
}
