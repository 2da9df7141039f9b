package scene

import "github.com/achilleasa/accelpack/types"

// A triangle mesh. Triangles holds three vertex indices per triangle.
type Mesh struct {
	GeometryBase

	Vertices  []types.Vec3
	Triangles []uint32

	// Set when the triangle topology changed since the last build. The
	// top-level merge skips re-copying mesh primitive data when this is
	// unset.
	TrianglesModified bool
}

// Get the number of triangles in the mesh.
func (m *Mesh) NumTriangles() int {
	return len(m.Triangles) / 3
}

// Get the three vertex positions of a triangle.
func (m *Mesh) TriangleVerts(index int) (v0, v1, v2 types.Vec3) {
	base := index * 3
	return m.Vertices[m.Triangles[base]],
		m.Vertices[m.Triangles[base+1]],
		m.Vertices[m.Triangles[base+2]]
}

// A volume is packed like a mesh (its bounds are represented by triangles)
// but its primitive data is always re-copied during the top-level merge.
type Volume struct {
	Mesh
}
