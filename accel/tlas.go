package accel

import "github.com/achilleasa/accelpack/scene"

// packTLAS merges every geometry's bottom-level pack into the scene-wide
// pack. Merge tasks run in parallel: each task's write region is derived
// from offsets computed serially below, so regions never overlap and the
// merge step needs no locking.
func (b *BVH) packTLAS() {
	// Calculate total packed size.
	primIndexSize := 0
	primTriVertsSize := 0
	for _, geom := range b.Geometry {
		blas := geom.Base().BLAS
		if blas == nil {
			continue
		}
		primIndexSize += len(blas.PrimIndex)
		primTriVertsSize += len(blas.PrimTriVerts)
	}

	// An empty scene is not an error; leave the pack empty and let the
	// caller abort the device build.
	if primIndexSize == 0 {
		return
	}

	b.Pack.Resize(primIndexSize, primTriVertsSize)

	pool := NewPool(0)
	defer pool.Close()

	packOffset := 0
	packVertsOffset := 0
	scheduled := 0

	// Iterate the geometry list rather than the object list: global
	// primitive offsets are derived from this ordering and the two passes
	// must agree on it.
	for _, geom := range b.Geometry {
		base := geom.Base()
		blas := base.BLAS
		if blas == nil {
			continue
		}

		base.PackVertsOffset = packVertsOffset

		// Merge visibility flags of all objects referencing this
		// geometry and resolve a concrete object index for
		// non-instanced geometry. Instanced geometry keeps object
		// index 0; it is resolved per-instance during traversal.
		objectIndex := 0
		objectVisibility := uint32(0)
		visibilityModified := false
		for _, obj := range b.Objects {
			if obj.Geometry != geom {
				continue
			}

			objectVisibility |= obj.VisibilityForTracing()
			visibilityModified = visibilityModified || obj.VisibilityModified || obj.ShadowCatcherModified

			if !base.Instanced {
				objectIndex = obj.DeviceIndex
				break
			}
		}

		if base.Modified || b.Params.PackAll {
			// packOffset/packVertsOffset keep advancing below; bind the
			// task to their current values.
			taskOffset, taskVertsOffset := packOffset, packVertsOffset
			pool.Push(func() {
				b.packInstance(geom, taskOffset, taskVertsOffset, objectIndex, objectVisibility, b.Params.PackAll, visibilityModified)
			})
			scheduled++
		}

		// Unscheduled geometries still occupy their slice of the scene
		// arrays from a previous build; offsets advance either way.
		packOffset += len(blas.PrimIndex)
		packVertsOffset += len(blas.PrimTriVerts)
	}

	pool.Wait()
	b.logger.Debugf("merged %d of %d geometries into scene pack (%d slots, %d verts)", scheduled, len(b.Geometry), primIndexSize, primTriVertsSize)
}

// packInstance copies one geometry's bottom-level pack into its reserved
// slice of the scene pack, rewriting indices to scene-global space. The
// task writes only to its disjoint slice and has no other effect.
func (b *BVH) packInstance(geom scene.Geometry, packOffset, packVertsOffset, objectIndex int, objectVisibility uint32, forcePack, visibilityModified bool) {
	base := geom.Base()
	blas := base.BLAS
	primOffset := int32(base.PrimOffset)

	if len(blas.PrimIndex) > 0 {
		// Volumes and curves always need their primitive data copied;
		// meshes can keep the previous build's data when their
		// topology is unchanged.
		primsHaveChanged := true
		if mesh, ok := geom.(*scene.Mesh); ok && !mesh.TrianglesModified && !forcePack {
			primsHaveChanged = false
		}
		primsHaveChanged = primsHaveChanged || visibilityModified

		if primsHaveChanged {
			for i := range blas.PrimIndex {
				slot := packOffset + i

				b.Pack.PrimType[slot] = blas.PrimType[i]
				b.Pack.PrimIndex[slot] = blas.PrimIndex[i] + primOffset
				if blas.PrimType[i]&PrimitiveAllCurve != 0 {
					b.Pack.PrimTriIndex[slot] = -1
				} else {
					b.Pack.PrimTriIndex[slot] = blas.PrimTriIndex[i] + int32(packVertsOffset)
				}
				b.Pack.PrimObject[slot] = int32(objectIndex)
				b.Pack.PrimVisibility[slot] = objectVisibility
			}
		}
	}

	// Vertex positions are copied verbatim; instance transforms are
	// applied during traversal, not here.
	if len(blas.PrimTriVerts) > 0 {
		copy(b.Pack.PrimTriVerts[packVertsOffset:packVertsOffset+len(blas.PrimTriVerts)], blas.PrimTriVerts)
	}
}
