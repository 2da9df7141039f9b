package main

import (
	"os"

	"github.com/achilleasa/accelpack/cmd"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "accelpack"
	app.Usage = "pack scene geometry for GPU ray-tracing acceleration structures"
	app.Version = "0.0.1"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "pack",
			Usage: "pack a procedurally generated scene and display pack statistics",
			Description: `
Generate a synthetic scene with the requested number of triangle meshes and
hair curves, build the per-geometry bottom-level packs, merge them into the
scene-wide arrays and print a size breakdown of the result.`,
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "meshes",
					Value: 4,
					Usage: "number of triangle meshes to generate",
				},
				cli.IntFlag{
					Name:  "triangles",
					Value: 1024,
					Usage: "triangles per generated mesh",
				},
				cli.IntFlag{
					Name:  "curves",
					Value: 0,
					Usage: "number of hair curves to generate",
				},
				cli.IntFlag{
					Name:  "curve-keys",
					Value: 4,
					Usage: "control keys per generated curve",
				},
				cli.BoolFlag{
					Name:  "force-pack",
					Usage: "re-pack every geometry even when unmodified",
				},
				cli.BoolFlag{
					Name:  "upload",
					Usage: "upload the packed arrays to the default GPU device",
				},
			},
			Action: cmd.PackScene,
		},
	}

	app.Run(os.Args)
}
