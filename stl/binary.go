// Package stl serialises a generated mesh to the binary STL format, plus
// the two text previewer formats (JSCAD, OpenSCAD).
package stl

import (
	"bytes"
	"encoding/binary"

	"gonum.org/v1/gonum/spatial/r3"

	"trailrelief/entities"
)

const headerSize = 80

// Bytes serialises an artifact's ribbon mesh to binary STL: an
// 80-byte header (banner, zero-padded/truncated), a 4-byte
// little-endian triangle count, then one 50-byte record per triangle
// (normal, v0, v1, v2, each as 3 little-endian float32s, plus a
// trailing zero attribute count). Byte length is always 84 + 50*N.
func Bytes(mesh entities.Mesh, banner string) []byte {
	buf := new(bytes.Buffer)
	buf.Grow(headerSize + 4 + 50*len(mesh.Triangles))

	header := make([]byte, headerSize)
	copy(header, banner)
	buf.Write(header)

	binary.Write(buf, binary.LittleEndian, uint32(len(mesh.Triangles)))

	for _, tri := range mesh.Triangles {
		v0, v1, v2 := mesh.Vertices[tri[0]], mesh.Vertices[tri[1]], mesh.Vertices[tri[2]]
		n := triangleNormal(v0, v1, v2)

		writeVec3(buf, n)
		writeVec3(buf, toVec(v0))
		writeVec3(buf, toVec(v1))
		writeVec3(buf, toVec(v2))
		binary.Write(buf, binary.LittleEndian, uint16(0))
	}

	return buf.Bytes()
}

func toVec(p entities.PlanarPoint) r3.Vec {
	return r3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// triangleNormal returns the unit normal of (v1-v0)x(v2-v0), or the
// zero vector for a degenerate zero-area triangle (no divide-by-zero).
func triangleNormal(a, b, c entities.PlanarPoint) r3.Vec {
	u := r3.Sub(toVec(b), toVec(a))
	v := r3.Sub(toVec(c), toVec(a))
	n := r3.Cross(u, v)
	length := r3.Norm(n)
	if length == 0 {
		return r3.Vec{}
	}
	return r3.Scale(1/length, n)
}

func writeVec3(buf *bytes.Buffer, v r3.Vec) {
	binary.Write(buf, binary.LittleEndian, float32(v.X))
	binary.Write(buf, binary.LittleEndian, float32(v.Y))
	binary.Write(buf, binary.LittleEndian, float32(v.Z))
}
