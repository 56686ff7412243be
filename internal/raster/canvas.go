// Package raster provides a software canvas for stroking screen-space
// segments and saving frames as PNG.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"

	"github.com/voxfeld/wireframe/pkg/render"
)

// Phosphor is the classic green-on-black wireframe palette.
var (
	Phosphor   = color.RGBA{R: 0x1f, G: 0xe0, B: 0x5a, A: 0xff}
	Background = color.RGBA{R: 0x05, G: 0x12, B: 0x08, A: 0xff}
)

// Canvas is a fixed-size RGBA raster surface.
type Canvas struct {
	img    *image.RGBA
	width  int
	height int
}

// New creates a canvas filled with the background color.
func New(width, height int) *Canvas {
	c := &Canvas{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
	c.Fill(Background)
	return c
}

// Fill paints the whole canvas with one color.
func (c *Canvas) Fill(col color.RGBA) {
	for y := 0; y < c.height; y++ {
		for x := 0; x < c.width; x++ {
			c.img.SetRGBA(x, y, col)
		}
	}
}

// Stroke draws every segment with the given color.
func (c *Canvas) Stroke(lines []render.Line, col color.RGBA) {
	for _, l := range lines {
		c.line(l.X1, l.Y1, l.X2, l.Y2, col)
	}
}

// line draws a single segment with Bresenham's algorithm. Pixels outside
// the canvas are skipped, so partially off-screen segments are safe.
func (c *Canvas) line(x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := -abs(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy

	x, y := x1, y1
	for {
		if x >= 0 && x < c.width && y >= 0 && y < c.height {
			c.img.SetRGBA(x, y, col)
		}
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// Image returns the underlying image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// SavePNG writes the canvas to a PNG file, creating parent directories as
// needed.
func (c *Canvas) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, c.img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
