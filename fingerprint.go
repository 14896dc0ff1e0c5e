package texatlas

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a stable hash over the input set's sorted sizes,
// letting a caller detect an unchanged input set across calls without
// comparing every SourceImage field by field. Tag values are never hashed —
// only geometry participates, so two calls with the same image sizes in a
// different Tag arrangement but identical sorted order still compare equal.
func (s packSummary) Fingerprint() uint64 {
	h := xxhash.New()

	order := sortForPacking(s.images)
	var buf [8]byte
	for _, i := range order {
		sz := s.images[i].Size
		binary.LittleEndian.PutUint32(buf[0:4], uint32(sz.W))
		binary.LittleEndian.PutUint32(buf[4:8], uint32(sz.H))
		_, _ = h.Write(buf[:])
	}

	return h.Sum64()
}
