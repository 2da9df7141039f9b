package accel

import (
	"testing"

	"github.com/achilleasa/accelpack/scene"
	"github.com/achilleasa/accelpack/types"
)

func TestPackTriangles(t *testing.T) {
	type spec struct {
		numTriangles int
		motionBlur   bool
		expType      int32
	}
	specs := []spec{
		{1, false, PrimitiveTriangle},
		{8, false, PrimitiveTriangle},
		{8, true, PrimitiveMotionTriangle},
	}

	for index, s := range specs {
		mesh := makeTestMesh("mesh", s.numTriangles)
		mesh.MotionBlur = s.motionBlur

		bvh := makeBLAS(mesh)

		if got := bvh.Pack.SlotCount(); got != s.numTriangles {
			t.Fatalf("[spec %d] expected %d packed slots; got %d", index, s.numTriangles, got)
		}

		for k := 0; k < s.numTriangles; k++ {
			if bvh.Pack.PrimType[k] != s.expType {
				t.Fatalf("[spec %d] expected slot %d type to be %d; got %d", index, k, s.expType, bvh.Pack.PrimType[k])
			}
			if bvh.Pack.PrimIndex[k] != int32(k) {
				t.Fatalf("[spec %d] expected slot %d to map to triangle %d; got %d", index, k, k, bvh.Pack.PrimIndex[k])
			}
			if bvh.Pack.PrimTriIndex[k] != int32(3*k) {
				t.Fatalf("[spec %d] expected slot %d tri index to be %d; got %d", index, k, 3*k, bvh.Pack.PrimTriIndex[k])
			}
			if bvh.Pack.PrimObject[k] != 0 {
				t.Fatalf("[spec %d] expected slot %d object index to be 0; got %d", index, k, bvh.Pack.PrimObject[k])
			}
			// Bottom-level packs carry no visibility information.
			if bvh.Pack.PrimVisibility[k] != 0 {
				t.Fatalf("[spec %d] expected slot %d visibility to be 0; got %d", index, k, bvh.Pack.PrimVisibility[k])
			}
		}

		if expVerts := 3 * s.numTriangles; len(bvh.Pack.PrimTriVerts) != expVerts {
			t.Fatalf("[spec %d] expected %d packed vertices; got %d", index, expVerts, len(bvh.Pack.PrimTriVerts))
		}
	}
}

func TestPackHairSegments(t *testing.T) {
	type spec struct {
		shape      scene.CurveShape
		motionBlur bool
		expType    int32
	}
	specs := []spec{
		{scene.CurveRibbon, false, PrimitiveCurveRibbon},
		{scene.CurveThick, false, PrimitiveCurveThick},
		{scene.CurveRibbon, true, PrimitiveMotionCurveRibbon},
		{scene.CurveThick, true, PrimitiveMotionCurveThick},
	}

	for index, s := range specs {
		hair := &scene.Hair{
			GeometryBase: scene.GeometryBase{Name: "hair", Modified: true},
			Shape:        s.shape,
			Curves: []scene.Curve{
				{NumKeys: 4}, // 3 segments
				{NumKeys: 3}, // 2 segments
			},
		}
		hair.MotionBlur = s.motionBlur

		bvh := makeBLAS(hair)

		if got := bvh.Pack.SlotCount(); got != 5 {
			t.Fatalf("[spec %d] expected 5 packed slots; got %d", index, got)
		}

		expCurve := []int32{0, 0, 0, 1, 1}
		expSegment := []uint32{0, 1, 2, 0, 1}
		for k := range expCurve {
			// Each segment slot points back to its curve, not the segment.
			if bvh.Pack.PrimIndex[k] != expCurve[k] {
				t.Fatalf("[spec %d] expected slot %d to map to curve %d; got %d", index, k, expCurve[k], bvh.Pack.PrimIndex[k])
			}
			if got := UnpackType(bvh.Pack.PrimType[k]); got != s.expType {
				t.Fatalf("[spec %d] expected slot %d base type to be %d; got %d", index, k, s.expType, got)
			}
			if got := UnpackSegment(bvh.Pack.PrimType[k]); got != expSegment[k] {
				t.Fatalf("[spec %d] expected slot %d segment to be %d; got %d", index, k, expSegment[k], got)
			}
			if bvh.Pack.PrimTriIndex[k] != -1 {
				t.Fatalf("[spec %d] expected slot %d tri index to be -1; got %d", index, k, bvh.Pack.PrimTriIndex[k])
			}
		}

		if len(bvh.Pack.PrimTriVerts) != 0 {
			t.Fatalf("[spec %d] expected no packed vertices for hair; got %d", index, len(bvh.Pack.PrimTriVerts))
		}
	}
}

func TestPackVolume(t *testing.T) {
	volume := &scene.Volume{Mesh: *makeTestMesh("volume", 2)}

	bvh := makeBLAS(volume)

	if got := bvh.Pack.SlotCount(); got != 2 {
		t.Fatalf("expected 2 packed slots; got %d", got)
	}
	for k := 0; k < 2; k++ {
		if bvh.Pack.PrimType[k] != PrimitiveTriangle {
			t.Fatalf("expected slot %d type to be %d; got %d", k, PrimitiveTriangle, bvh.Pack.PrimType[k])
		}
	}
}

func TestPackBLASContract(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected bottom-level build with two geometries to panic")
		}
	}()

	geometry := []scene.Geometry{makeTestMesh("a", 1), makeTestMesh("b", 1)}
	objects := []*scene.Object{{Geometry: geometry[0]}}

	bvh := NewBVH(Params{}, geometry, objects)
	bvh.Build(NewProgress())
}

// Create a mesh laid out as a triangle strip along the x axis.
func makeTestMesh(name string, numTriangles int) *scene.Mesh {
	mesh := &scene.Mesh{
		GeometryBase: scene.GeometryBase{
			Name:     name,
			Modified: true,
		},
		TrianglesModified: true,
	}

	for k := 0; k < numTriangles+2; k++ {
		mesh.Vertices = append(mesh.Vertices, types.XYZ(float32(k), float32(k%2), 0))
	}
	for k := 0; k < numTriangles; k++ {
		mesh.Triangles = append(mesh.Triangles, uint32(k), uint32(k+1), uint32(k+2))
	}

	return mesh
}

// Build a bottom-level pack for a single geometry with a placeholder object.
func makeBLAS(geom scene.Geometry) *BVH {
	placeholder := &scene.Object{Geometry: geom}
	bvh := NewBVH(Params{}, []scene.Geometry{geom}, []*scene.Object{placeholder})
	bvh.Build(NewProgress())
	return bvh
}
