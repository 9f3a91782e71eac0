package floormap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Checksum returns a stable fingerprint of the grid layout: tile kinds, room
// membership and wall adjacency, in row-major order. Two maps carved the same
// way produce the same checksum, which is what generation telemetry and
// reproducibility tests compare.
func (m *FloorMap) Checksum() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for row := range m.grid.Rows() {
		for i := range row {
			t := &row[i]
			buf[0] = byte(t.Kind)
			buf[1] = byte(t.Walls)
			room, ok := t.Type.Room()
			if ok {
				buf[2] = 1
				binary.LittleEndian.PutUint32(buf[3:7], uint32(room))
			} else {
				buf[2] = 0
				binary.LittleEndian.PutUint32(buf[3:7], 0)
			}
			buf[7] = 0
			h.Write(buf[:])
		}
	}
	return h.Sum64()
}
