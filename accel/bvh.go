package accel

import (
	"github.com/achilleasa/accelpack/log"
	"github.com/achilleasa/accelpack/scene"
)

// Params control what a BVH build packs.
type Params struct {
	// Select between the scene-wide instance pack and the per-geometry
	// pack.
	TopLevel bool

	// Force every geometry to be re-packed even when unmodified.
	PackAll bool
}

// The Device interface is implemented by acceleration structure builders
// that consume the packed scene data.
type Device interface {
	// Build or refit the device acceleration structure from the packed
	// arrays. The pack remains valid after a failed build so the caller
	// may retry.
	BuildAccel(b *BVH) error
}

// A BVH packs geometry into the flat array form consumed by a device
// acceleration structure builder. Bottom-level instances flatten a single
// geometry; the top-level instance merges every geometry's pack into one
// scene-wide address space.
type BVH struct {
	Params   Params
	Geometry []scene.Geometry
	Objects  []*scene.Object

	// The packed output. Exclusively owned by this BVH; handed out
	// read-only for device upload.
	Pack scene.PackedBVH

	logger  log.Logger
	doRefit bool
}

// Create a BVH for the given geometry and object lists. The geometry list
// order is an external contract: global primitive offsets are derived from
// it and the top-level merge must observe the same ordering.
func NewBVH(params Params, geometry []scene.Geometry, objects []*scene.Object) *BVH {
	return &BVH{
		Params:   params,
		Geometry: geometry,
		Objects:  objects,
		logger:   log.New("accel"),
	}
}

// Build packs the input geometry. Top-level builds merge all bottom-level
// packs and block until every merge task has completed.
func (b *BVH) Build(progress *Progress) {
	if b.Params.TopLevel {
		progress.SetStatus("Updating scene BVH", "Packing BVH instances")
		b.packTLAS()
	} else {
		b.packBLAS()
	}
}

// CopyToDevice hands the packed arrays to the device builder. A failed
// device build is reported through the progress collaborator; the pack
// itself stays valid.
func (b *BVH) CopyToDevice(progress *Progress, device Device) {
	progress.SetStatus("Updating scene BVH", "Building acceleration structure")

	if err := device.BuildAccel(b); err != nil {
		progress.SetError("failed to build acceleration structure: " + err.Error())
	}
}

// Refit requests that the next device build updates the existing structure
// in place instead of rebuilding it.
func (b *BVH) Refit() {
	b.doRefit = true
}

// Check whether an in-place refit was requested.
func (b *BVH) NeedsRefit() bool {
	return b.doRefit
}

// Clear the refit request. Called by the device builder once the refit has
// been applied.
func (b *BVH) ClearRefit() {
	b.doRefit = false
}
