package scene

import "testing"

func TestVisibilityForTracing(t *testing.T) {
	type spec struct {
		visibility    uint32
		shadowCatcher bool
		expMask       uint32
	}
	specs := []spec{
		{VisibleAll, false, VisibleAll},
		{VisibleCamera | VisibleShadow, false, VisibleCamera | VisibleShadow},
		// Shadow catchers are only visible to camera rays.
		{VisibleAll, true, VisibleCamera},
		{VisibleShadow, true, 0},
	}

	for index, s := range specs {
		obj := &Object{Visibility: s.visibility, ShadowCatcher: s.shadowCatcher}
		if got := obj.VisibilityForTracing(); got != s.expMask {
			t.Fatalf("[spec %d] expected tracing visibility %#x; got %#x", index, s.expMask, got)
		}
	}
}

func TestHairSegmentCounts(t *testing.T) {
	hair := &Hair{
		Curves: []Curve{
			{NumKeys: 4},
			{NumKeys: 2},
			{NumKeys: 1}, // degenerate; contributes no segments
		},
	}

	if got := hair.NumCurves(); got != 3 {
		t.Fatalf("expected 3 curves; got %d", got)
	}
	if got := hair.NumSegments(); got != 4 {
		t.Fatalf("expected 4 segments; got %d", got)
	}
}
