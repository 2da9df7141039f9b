package scene

import "github.com/achilleasa/accelpack/types"

// Ray visibility bits.
const (
	VisibleCamera uint32 = 1 << iota
	VisibleDiffuse
	VisibleGlossy
	VisibleTransmission
	VisibleShadow
	VisibleScatter

	VisibleAll = ^uint32(0)
)

// An object places a geometry in the scene, possibly with its own transform
// and visibility mask.
type Object struct {
	Name     string
	Geometry Geometry

	// Ray visibility mask for this object.
	Visibility uint32

	// Index of the object in the device object list.
	DeviceIndex int

	// World transform. The packer carries it around but never applies it;
	// instance transforms are resolved during traversal.
	Transform types.Mat4

	ShadowCatcher bool

	// Change tracking since the last device sync.
	VisibilityModified    bool
	ShadowCatcherModified bool
}

// Get the visibility mask used during ray traversal. Shadow catchers are
// only visible to camera rays.
func (o *Object) VisibilityForTracing() uint32 {
	if o.ShadowCatcher {
		return o.Visibility & VisibleCamera
	}
	return o.Visibility
}
