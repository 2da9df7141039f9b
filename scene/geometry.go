package scene

// GeometryBase carries the state shared by every geometry variant.
type GeometryBase struct {
	Name string

	// Global primitive offset assigned by the owning scene when geometry
	// is synced to the device. Bottom-level primitive indices are shifted
	// by this value during the top-level merge.
	PrimOffset uint32

	// Set when the geometry is referenced by more than one object or by
	// an object carrying its own transform.
	Instanced bool

	// Set when the geometry data changed since the last build.
	Modified bool

	// Set when a motion vertex position attribute is present.
	MotionBlur bool

	// The bottom-level pack for this geometry. Owned by the acceleration
	// structure builder that produced it; everyone else gets read access
	// only.
	BLAS *PackedBVH

	// Offset of this geometry's vertex block inside the scene-level
	// vertex pool. Assigned during the top-level merge.
	PackVertsOffset int
}

func (b *GeometryBase) Base() *GeometryBase {
	return b
}

// Geometry is a closed variant over the supported geometry kinds. The
// acceleration packers select per-kind behavior with a type switch over
// *Mesh, *Hair and *Volume.
type Geometry interface {
	Base() *GeometryBase
}
