package accel

import "github.com/achilleasa/accelpack/scene"

// packBLAS flattens the primitives of a single geometry into its bottom-level
// pack. Bottom-level BVHs are built per-geometry: the input lists must hold
// exactly one geometry and its placeholder object.
func (b *BVH) packBLAS() {
	if len(b.Geometry) != 1 || len(b.Objects) != 1 {
		panic("accel: bottom-level BVH requires exactly one geometry and one object")
	}
	geom := b.Geometry[0]

	switch t := geom.(type) {
	case *scene.Hair:
		b.packHairSegments(t)
	case *scene.Volume:
		b.packTriangles(&t.Mesh)
	case *scene.Mesh:
		b.packTriangles(t)
	}

	// Bottom-level packs carry no visibility information; visibility is
	// resolved for all instancing objects during the top-level merge.
	b.packPrimitives(geom, 0)

	geom.Base().BLAS = &b.Pack
	b.logger.Debugf("packed bottom-level BVH for %q (%d slots)", geom.Base().Name, b.Pack.SlotCount())
}

// packHairSegments appends one slot per curve segment. The slot tag combines
// the curve base type with the segment's index within its curve; the
// primitive index points back to the owning curve, not the segment.
func (b *BVH) packHairSegments(hair *scene.Hair) {
	numSegments := hair.NumSegments()
	if numSegments == 0 {
		return
	}

	pack := &b.Pack
	pack.PrimType = make([]int32, 0, numSegments)
	pack.PrimIndex = make([]int32, 0, numSegments)
	pack.PrimObject = make([]int32, 0, numSegments)

	ptype := PrimitiveCurveThick
	switch {
	case hair.MotionBlur && hair.Shape == scene.CurveRibbon:
		ptype = PrimitiveMotionCurveRibbon
	case hair.MotionBlur:
		ptype = PrimitiveMotionCurveThick
	case hair.Shape == scene.CurveRibbon:
		ptype = PrimitiveCurveRibbon
	}

	for j, curve := range hair.Curves {
		for k := 0; k < curve.NumSegments(); k++ {
			pack.PrimType = append(pack.PrimType, PackSegment(ptype, uint32(k)))
			pack.PrimIndex = append(pack.PrimIndex, int32(j))
			pack.PrimObject = append(pack.PrimObject, 0)
		}
	}
}

// packTriangles assigns one slot per triangle with an identity slot to
// triangle mapping.
func (b *BVH) packTriangles(mesh *scene.Mesh) {
	numTriangles := mesh.NumTriangles()
	if numTriangles == 0 {
		return
	}

	pack := &b.Pack
	pack.PrimType = make([]int32, numTriangles)
	pack.PrimIndex = make([]int32, numTriangles)
	pack.PrimObject = make([]int32, numTriangles)

	ptype := PrimitiveTriangle
	if mesh.MotionBlur {
		ptype = PrimitiveMotionTriangle
	}

	for k := 0; k < numTriangles; k++ {
		pack.PrimType[k] = ptype
		pack.PrimIndex[k] = int32(k)
	}
}

// packPrimitives fills in the per-slot triangle and visibility arrays from
// the already assigned type and index tags. The visibility mask is applied
// uniformly to every slot.
func (b *BVH) packPrimitives(geom scene.Geometry, visibility uint32) {
	pack := &b.Pack
	numPrims := pack.SlotCount()

	pack.PrimTriIndex = make([]int32, numPrims)
	pack.PrimVisibility = make([]uint32, numPrims)
	pack.PrimTriVerts = pack.PrimTriVerts[:0]

	var mesh *scene.Mesh
	switch t := geom.(type) {
	case *scene.Volume:
		mesh = &t.Mesh
	case *scene.Mesh:
		mesh = t
	}

	for i := 0; i < numPrims; i++ {
		pack.PrimVisibility[i] = visibility

		if pack.PrimType[i]&PrimitiveAllCurve != 0 {
			pack.PrimTriIndex[i] = -1
			continue
		}

		pack.PrimTriIndex[i] = int32(len(pack.PrimTriVerts))
		v0, v1, v2 := mesh.TriangleVerts(int(pack.PrimIndex[i]))
		pack.PrimTriVerts = append(pack.PrimTriVerts, v0.Vec4(0), v1.Vec4(0), v2.Vec4(0))
	}
}
