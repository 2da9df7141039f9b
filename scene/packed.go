package scene

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"

	"github.com/achilleasa/accelpack/types"
	"github.com/olekukonko/tablewriter"
)

// PackedBVH is the flattened, device-uploadable form of a geometry's (or the
// whole scene's) primitives. The five per-slot arrays always share the same
// length: one entry per packed primitive slot.
//
// PrimType tags each slot with its primitive kind; curve tags additionally
// carry the segment-within-curve index in their high bits. PrimTriIndex
// points into PrimTriVerts for triangle slots and is -1 for curve slots.
// PrimTriVerts stores three vertex positions per packed triangle.
type PackedBVH struct {
	PrimType       []int32
	PrimIndex      []int32
	PrimObject     []int32
	PrimVisibility []uint32
	PrimTriIndex   []int32
	PrimTriVerts   []types.Vec4
}

// Get the number of packed primitive slots.
func (p *PackedBVH) SlotCount() int {
	return len(p.PrimIndex)
}

// Resize the pack to hold numPrims slots and numVerts triangle vertices.
// Existing contents are preserved: geometries that were not re-packed keep
// their slice of the arrays from the previous build.
func (p *PackedBVH) Resize(numPrims, numVerts int) {
	p.PrimType = grow(p.PrimType, numPrims)
	p.PrimIndex = grow(p.PrimIndex, numPrims)
	p.PrimObject = grow(p.PrimObject, numPrims)
	p.PrimVisibility = grow(p.PrimVisibility, numPrims)
	p.PrimTriIndex = grow(p.PrimTriIndex, numPrims)
	p.PrimTriVerts = grow(p.PrimTriVerts, numVerts)
}

// Grow or shrink a slice to length n keeping the existing prefix.
func grow[E any](s []E, n int) []E {
	if n <= cap(s) {
		return s[:n]
	}
	out := make([]E, n)
	copy(out, s)
	return out
}

// Build a tabular representation of pack statistics.
func (p *PackedBVH) Stats() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Array", "Entries", "Size"})
	table.Append([]string{"prim_type", fmt.Sprintf("%d", len(p.PrimType)), fmtSize(p.PrimType)})
	table.Append([]string{"prim_index", fmt.Sprintf("%d", len(p.PrimIndex)), fmtSize(p.PrimIndex)})
	table.Append([]string{"prim_object", fmt.Sprintf("%d", len(p.PrimObject)), fmtSize(p.PrimObject)})
	table.Append([]string{"prim_visibility", fmt.Sprintf("%d", len(p.PrimVisibility)), fmtSize(p.PrimVisibility)})
	table.Append([]string{"prim_tri_index", fmt.Sprintf("%d", len(p.PrimTriIndex)), fmtSize(p.PrimTriIndex)})
	table.Append([]string{"prim_tri_verts", fmt.Sprintf("%d", len(p.PrimTriVerts)), fmtSize(p.PrimTriVerts)})
	table.SetFooter([]string{"Total", fmt.Sprintf("%d slots", p.SlotCount()), strings.TrimLeft(fmtSize(p.PrimType, p.PrimIndex, p.PrimObject, p.PrimVisibility, p.PrimTriIndex, p.PrimTriVerts), " ")})

	table.Render()
	return buf.String()
}

// Sum the total space used by a set of slices and return back a formatted
// value with the appropriate byte/kb/mb unit.
func fmtSize(items ...interface{}) string {
	var totalBytes float32 = 0.0
	for _, item := range items {
		t := reflect.TypeOf(item)
		v := reflect.ValueOf(item)
		if v.Len() == 0 {
			continue
		}

		totalBytes += float32(int(t.Elem().Size()) * v.Len())
	}

	if totalBytes < 1e3 {
		return fmt.Sprintf("%3d bytes", int(totalBytes))
	} else if totalBytes < 1e6 {
		return fmt.Sprintf("%3.1f kb", totalBytes/1e3)
	}
	return fmt.Sprintf("%5.1f mb", totalBytes/1e6)
}
