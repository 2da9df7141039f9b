package accel

// Primitive type tags stored in the packed prim_type array. Tags are bit
// flags so groups of kinds can be tested with a single mask.
const (
	PrimitiveNone              int32 = 0
	PrimitiveTriangle          int32 = 1 << 0
	PrimitiveMotionTriangle    int32 = 1 << 1
	PrimitiveCurveThick        int32 = 1 << 2
	PrimitiveMotionCurveThick  int32 = 1 << 3
	PrimitiveCurveRibbon       int32 = 1 << 4
	PrimitiveMotionCurveRibbon int32 = 1 << 5

	PrimitiveAllTriangle = PrimitiveTriangle | PrimitiveMotionTriangle
	PrimitiveAllCurve    = PrimitiveCurveThick | PrimitiveMotionCurveThick |
		PrimitiveCurveRibbon | PrimitiveMotionCurveRibbon

	// Bits occupied by the base tags; curve segment indices are packed
	// above them.
	primitiveTypeBits = 6
)

// Combine a curve base type with the index of a segment within its curve.
func PackSegment(ptype int32, segment uint32) int32 {
	return ptype | int32(segment)<<primitiveTypeBits
}

// Extract the segment index from a packed curve tag.
func UnpackSegment(ptype int32) uint32 {
	return uint32(ptype) >> primitiveTypeBits
}

// Extract the base primitive type from a packed tag.
func UnpackType(ptype int32) int32 {
	return ptype & (1<<primitiveTypeBits - 1)
}
