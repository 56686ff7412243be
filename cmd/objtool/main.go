// objtool is a CLI utility for inspecting and normalizing OBJ models.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/voxfeld/wireframe/internal/raster"
	"github.com/voxfeld/wireframe/pkg/formats"
	"github.com/voxfeld/wireframe/pkg/render"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "info":
		cmdInfo(args)
	case "lines":
		cmdLines(args)
	case "render":
		cmdRender(args)
	case "center":
		cmdCenter(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`objtool - OBJ model utility

Usage:
  objtool <command> [options]

Commands:
  info <file.obj>                  Show model information
  lines <file.obj>                 Render one frame, print the segments
  render <file.obj> [out.png]      Render one frame to a PNG
  center <in.obj> <out.obj> [size] Recenter, rescale and rewrite a model

Examples:
  objtool info models/cube.obj
  objtool render models/cube.obj cube.png
  objtool center raw.obj normalized.obj 20`)
}

func loadModel(path string) *formats.Mesh {
	mesh, err := formats.LoadOBJ(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return mesh
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool info <file.obj>")
		os.Exit(1)
	}

	mesh := loadModel(args[0])
	min, max := mesh.Bounds()
	dim := max.Sub(min)

	fmt.Printf("Model:    %s\n", args[0])
	fmt.Printf("Name:     %s\n", mesh.Name)
	fmt.Printf("Vertices: %d\n", len(mesh.Vertices))
	fmt.Printf("Faces:    %d\n", len(mesh.Faces))
	if mesh.DroppedFaces > 0 {
		fmt.Printf("Dropped:  %d (invalid vertex references)\n", mesh.DroppedFaces)
	}
	fmt.Printf("Bounds:   (%.3f, %.3f, %.3f) .. (%.3f, %.3f, %.3f)\n",
		min.X, min.Y, min.Z, max.X, max.Y, max.Z)
	fmt.Printf("Extent:   %.3f x %.3f x %.3f\n", dim.X, dim.Y, dim.Z)
}

// oneFrame renders a single frame of the given model at the default
// viewport.
func oneFrame(path string, width, height int) []render.Line {
	r, err := render.New(render.Config{Width: width, Height: height})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := r.LoadModel(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	r.Start()
	return r.Render()
}

func cmdLines(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool lines <file.obj>")
		os.Exit(1)
	}

	lines := oneFrame(args[0], 800, 600)
	for _, l := range lines {
		fmt.Printf("%d %d %d %d\n", l.X1, l.Y1, l.X2, l.Y2)
	}
	fmt.Fprintf(os.Stderr, "%d segments\n", len(lines))
}

func cmdRender(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: objtool render <file.obj> [out.png]")
		os.Exit(1)
	}
	out := "frame.png"
	if len(args) > 1 {
		out = args[1]
	}

	width, height := 800, 600
	lines := oneFrame(args[0], width, height)

	c := raster.New(width, height)
	c.Stroke(lines, raster.Phosphor)
	if err := c.SavePNG(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d segments)\n", out, len(lines))
}

func cmdCenter(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: objtool center <in.obj> <out.obj> [size]")
		os.Exit(1)
	}

	size := 20.0
	if len(args) > 2 {
		var err error
		size, err = strconv.ParseFloat(args[2], 32)
		if err != nil || size <= 0 {
			fmt.Fprintf(os.Stderr, "Invalid size: %s\n", args[2])
			os.Exit(1)
		}
	}

	// LoadOBJ already recentres; FitTo normalizes the scale.
	mesh := loadModel(args[0])
	mesh.FitTo(float32(size))

	file, err := os.Create(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := mesh.EncodeOBJ(file); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s (%d vertices, %d faces)\n", args[1], len(mesh.Vertices), len(mesh.Faces))
}
