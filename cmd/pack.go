package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/achilleasa/accelpack/accel"
	"github.com/achilleasa/accelpack/device"
	"github.com/achilleasa/accelpack/scene"
	"github.com/achilleasa/accelpack/types"
	"github.com/urfave/cli"
)

// Pack a procedurally generated scene and display statistics for the merged
// scene-level arrays. Mainly useful for benchmarking the packers and for
// smoke-testing device uploads.
func PackScene(ctx *cli.Context) error {
	setupLogging(ctx)

	numMeshes := ctx.Int("meshes")
	trisPerMesh := ctx.Int("triangles")
	numCurves := ctx.Int("curves")
	if numMeshes <= 0 && numCurves <= 0 {
		return errors.New("nothing to pack; need at least one mesh or curve")
	}

	geometry, objects := makeDemoScene(numMeshes, trisPerMesh, numCurves, ctx.Int("curve-keys"))

	start := time.Now()

	// Build a bottom-level pack per geometry using a placeholder object.
	progress := accel.NewProgress()
	for _, geom := range geometry {
		placeholder := &scene.Object{
			Geometry:  geom,
			Transform: types.Ident4(),
		}
		blas := accel.NewBVH(accel.Params{}, []scene.Geometry{geom}, []*scene.Object{placeholder})
		blas.Build(progress)
	}

	// Merge everything into the scene-level pack.
	tlas := accel.NewBVH(
		accel.Params{TopLevel: true, PackAll: ctx.Bool("force-pack")},
		geometry,
		objects,
	)
	tlas.Build(progress)

	logger.Noticef("packed %d geometries in %d ms", len(geometry), time.Since(start).Nanoseconds()/1e6)
	fmt.Print(tlas.Pack.Stats())

	if ctx.Bool("upload") {
		uploader, err := device.NewUploader()
		if err != nil {
			return err
		}
		defer uploader.Close()

		tlas.CopyToDevice(progress, uploader)
		if err = progress.Err(); err != nil {
			return err
		}
		logger.Notice("uploaded packed scene to device")
	}

	return nil
}

// Generate a deterministic scene: a row of single-fan triangle meshes
// followed by one hair geometry when curves are requested.
func makeDemoScene(numMeshes, trisPerMesh, numCurves, keysPerCurve int) ([]scene.Geometry, []*scene.Object) {
	if trisPerMesh <= 0 {
		trisPerMesh = 64
	}
	if keysPerCurve < 2 {
		keysPerCurve = 4
	}

	var geometry []scene.Geometry
	var objects []*scene.Object
	primOffset := uint32(0)

	for m := 0; m < numMeshes; m++ {
		mesh := &scene.Mesh{
			GeometryBase: scene.GeometryBase{
				Name:       fmt.Sprintf("mesh-%d", m),
				PrimOffset: primOffset,
				Modified:   true,
			},
			TrianglesModified: true,
		}

		// Triangle fan around the mesh origin.
		origin := types.XYZ(float32(m)*2.0, 0, 0)
		mesh.Vertices = append(mesh.Vertices, origin)
		for t := 0; t < trisPerMesh; t++ {
			mesh.Vertices = append(mesh.Vertices,
				origin.Add(types.XYZ(1, float32(t), 0)),
				origin.Add(types.XYZ(1, float32(t+1), 0)),
			)
			mesh.Triangles = append(mesh.Triangles, 0, uint32(2*t+1), uint32(2*t+2))
		}
		primOffset += uint32(trisPerMesh)

		geometry = append(geometry, mesh)
		objects = append(objects, &scene.Object{
			Name:        mesh.Name,
			Geometry:    mesh,
			Visibility:  scene.VisibleAll,
			DeviceIndex: m,
			Transform:   types.Ident4(),
		})
	}

	if numCurves > 0 {
		hair := &scene.Hair{
			GeometryBase: scene.GeometryBase{
				Name:       "hair",
				PrimOffset: primOffset,
				Modified:   true,
			},
			Shape: scene.CurveThick,
		}
		for c := 0; c < numCurves; c++ {
			hair.Curves = append(hair.Curves, scene.Curve{NumKeys: keysPerCurve})
		}

		geometry = append(geometry, hair)
		objects = append(objects, &scene.Object{
			Name:        hair.Name,
			Geometry:    hair,
			Visibility:  scene.VisibleAll,
			DeviceIndex: numMeshes,
			Transform:   types.Ident4(),
		})
	}

	return geometry, objects
}
