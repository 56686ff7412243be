// Package render implements the software wireframe pipeline: per-frame
// Euler rotation, camera transform, perspective projection, edge
// extraction and deduplication. A Renderer owns its mesh and is not safe
// for concurrent use; hosts drive it from a single goroutine, once per
// animation tick.
package render

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/voxfeld/wireframe/pkg/formats"
	"github.com/voxfeld/wireframe/pkg/math"
)

// Pipeline defaults.
const (
	DefaultFocalLength      = 50.0
	DefaultNearEpsilon      = 1e-4
	DefaultDedupTolerancePx = 1
	DefaultSpinStepDeg      = 5.0

	// Loaded models are rescaled to fit this bounding-box extent.
	modelFitSize = 20.0
)

const twoPi = float32(2 * gomath.Pi)

// Config holds renderer construction parameters. Zero values fall back to
// the pipeline defaults; Width and Height are required.
type Config struct {
	Width  int
	Height int

	// FocalLength of the perspective projection.
	FocalLength float32

	// NearEpsilon is the minimum visible camera-space depth.
	NearEpsilon float32

	// DedupTolerancePx is the pixel tolerance under which two emitted
	// edges count as the same.
	DedupTolerancePx int

	// SpinStepDeg is the auto-rotation advance per frame, in degrees.
	SpinStepDeg float32

	Logger *zap.Logger
}

// Renderer turns a triangle mesh into a per-frame list of unique 2D
// screen-space segments.
type Renderer struct {
	width  int
	height int
	focal  float32
	scale  float32
	near   float32
	tol2   int
	step   float32 // spin advance per frame, radians

	camera  math.Vec3
	rot     math.Vec3 // static rotation, radians
	spin    float32   // auto-rotation phase, wraps at 2*pi
	running bool

	mesh     *formats.Mesh
	original []math.Vec3 // centered vertex snapshot, never mutated

	log *zap.Logger
}

// New creates a stopped renderer with an empty mesh.
func New(cfg Config) (*Renderer, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid viewport %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FocalLength == 0 {
		cfg.FocalLength = DefaultFocalLength
	}
	if cfg.NearEpsilon == 0 {
		cfg.NearEpsilon = DefaultNearEpsilon
	}
	if cfg.DedupTolerancePx == 0 {
		cfg.DedupTolerancePx = DefaultDedupTolerancePx
	}
	if cfg.SpinStepDeg == 0 {
		cfg.SpinStepDeg = DefaultSpinStepDeg
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	minDim := cfg.Width
	if cfg.Height < minDim {
		minDim = cfg.Height
	}

	return &Renderer{
		width:  cfg.Width,
		height: cfg.Height,
		focal:  cfg.FocalLength,
		scale:  float32(minDim) / 100.0,
		near:   cfg.NearEpsilon,
		tol2:   cfg.DedupTolerancePx * cfg.DedupTolerancePx,
		step:   math.Radians(cfg.SpinStepDeg),
		camera: math.Vec3{X: 0, Y: 0, Z: -10},
		mesh:   &formats.Mesh{},
		log:    cfg.Logger,
	}, nil
}

// LoadModel loads an OBJ file, rescales it to the standard model box and
// installs it as the active mesh. A missing file is not fatal: the
// renderer logs a diagnostic, keeps an empty mesh and keeps functioning.
// Malformed model data is surfaced to the caller.
func (r *Renderer) LoadModel(path string) error {
	mesh, err := formats.LoadOBJ(path)
	if errors.Is(err, formats.ErrModelNotFound) {
		r.log.Warn("model file not found, using empty mesh", zap.String("path", path))
		r.SetMesh(nil)
		return nil
	}
	if err != nil {
		return err
	}

	mesh.FitTo(modelFitSize)
	r.SetMesh(mesh)

	r.log.Info("model loaded",
		zap.String("path", path),
		zap.String("name", mesh.Name),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("faces", len(mesh.Faces)),
		zap.Int("dropped_faces", mesh.DroppedFaces),
	)
	return nil
}

// SetMesh installs a mesh directly, snapshotting its vertex positions as
// the per-frame transform base. Passing nil installs an empty mesh.
func (r *Renderer) SetMesh(mesh *formats.Mesh) {
	if mesh == nil {
		mesh = &formats.Mesh{}
	}
	r.mesh = mesh
	r.original = make([]math.Vec3, len(mesh.Vertices))
	copy(r.original, mesh.Vertices)
}

// Mesh returns the active mesh.
func (r *Renderer) Mesh() *formats.Mesh {
	return r.mesh
}

// SetCamera sets the camera position.
func (r *Renderer) SetCamera(x, y, z float32) {
	r.camera = math.Vec3{X: x, Y: y, Z: z}
}

// SetRotation sets the static rotation in degrees.
func (r *Renderer) SetRotation(x, y, z float32) {
	r.rot = math.Vec3{X: math.Radians(x), Y: math.Radians(y), Z: math.Radians(z)}
}

// Start switches the renderer to the running state.
func (r *Renderer) Start() { r.running = true }

// Stop halts rendering; subsequent Render calls return no output and do
// not advance the animation clock.
func (r *Renderer) Stop() { r.running = false }

// IsRunning reports whether the renderer is running.
func (r *Renderer) IsRunning() bool { return r.running }

// Phase returns the current auto-rotation phase in radians, in [0, 2*pi).
func (r *Renderer) Phase() float32 { return r.spin }

// Render produces the current frame's unique segments. Each call starts
// from the original vertex snapshot, advances the auto-rotation phase,
// rotates, transforms into camera space, projects with a near-plane cull
// and extracts deduplicated triangle edges. The phase accumulator is the
// only state it mutates.
func (r *Renderer) Render() []Line {
	if !r.running {
		return nil
	}

	verts := make([]math.Vec3, len(r.original))
	copy(verts, r.original)

	r.spin += r.step
	if r.spin >= twoPi {
		r.spin -= twoPi
	}

	angles := math.Vec3{X: r.rot.X, Y: r.rot.Y + r.spin, Z: r.rot.Z}
	math.RotateAll(angles, verts)
	math.TranslateAll(r.camera.Scale(-1), verts)

	projected := make([]Point, len(verts))
	for i, v := range verts {
		projected[i] = r.project(v)
	}

	var lines []Line
	for _, f := range r.mesh.Faces {
		a, okA := resolveIndex(f[0], len(projected))
		b, okB := resolveIndex(f[1], len(projected))
		c, okC := resolveIndex(f[2], len(projected))
		if !okA || !okB || !okC {
			continue
		}
		pa, pb, pc := projected[a], projected[b], projected[c]
		if pa == Sentinel || pb == Sentinel || pc == Sentinel {
			continue
		}
		lines = appendLine(lines, pa, pb, r.tol2)
		lines = appendLine(lines, pb, pc, r.tol2)
		lines = appendLine(lines, pc, pa, r.tol2)
	}
	return lines
}

// project maps a camera-space vertex to a screen coordinate, or Sentinel
// when the vertex sits at or behind the near plane.
func (r *Renderer) project(v math.Vec3) Point {
	if v.Z <= r.near {
		return Sentinel
	}
	sx := gomath.Round(float64((v.X*r.focal/v.Z)*r.scale + float32(r.width)*0.5))
	sy := gomath.Round(float64((v.Y*r.focal/v.Z)*r.scale + float32(r.height)*0.5))
	return Point{int(sx), int(sy)}
}

// resolveIndex tolerates both 0-based and 1-based face encodings: the raw
// index is tried first, then index-1. ok is false when neither lands in
// range.
func resolveIndex(idx, n int) (int, bool) {
	if idx >= 0 && idx < n {
		return idx, true
	}
	if idx-1 >= 0 && idx-1 < n {
		return idx - 1, true
	}
	return 0, false
}
