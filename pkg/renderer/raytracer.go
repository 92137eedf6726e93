package renderer

import (
	"image"
	"math"
	"runtime"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Config contains render-scoped configuration, threaded explicitly into
// trace calls instead of living in process-wide mutable state
type Config struct {
	Depth        int     // Maximum recursion depth for reflection/refraction
	Threshold    float64 // Carried-weight cutoff for early termination
	SuperSamples int     // N for the NxN antialiasing grid (0 disables AA)
	AAThreshold  float64 // Per-channel neighbor difference marking a boundary pixel
	Threads      int     // Worker count (0 = use CPU count)
	UseKdTree    bool    // Whether Setup builds the spatial index
	KdDepth      int     // kd-tree depth limit
	KdLeafSize   int     // kd-tree leaf size threshold
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Depth:        5,
		Threshold:    0.001,
		SuperSamples: 3,
		AAThreshold:  0.1,
		Threads:      0,
		UseKdTree:    true,
		KdDepth:      15,
		KdLeafSize:   10,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	core.Scene
	Camera() core.Camera
	Background() core.Background
	BuildTree(depthLimit, leafSize int)
}

// RayTracer drives per-pixel tracing across parallel workers and owns
// the pixel buffer for the duration of a render
type RayTracer struct {
	scene  Scene
	config Config
	logger core.Logger

	buffer []byte // RGB, 3 bytes per pixel, row-major by (x + y*width)
	width  int
	height int

	workers workerState
}

// NewRayTracer creates a raytracer for the given scene
func NewRayTracer(sc Scene, config Config, logger core.Logger) *RayTracer {
	if config.Threads <= 0 {
		config.Threads = runtime.NumCPU()
	}
	if logger == nil {
		logger = NewDefaultLogger()
	}

	return &RayTracer{
		scene:  sc,
		config: config,
		logger: logger,
	}
}

// Setup prepares the pixel buffer and builds the spatial index. It must
// be called (directly or via StartRender) before tracing. The buffer is
// reused across renders when the dimensions are unchanged.
func (rt *RayTracer) Setup(width, height int) {
	newSize := width * height * 3
	if newSize != len(rt.buffer) {
		rt.buffer = make([]byte, newSize)
	} else {
		clear(rt.buffer)
	}
	rt.width = width
	rt.height = height

	if rt.config.UseKdTree {
		rt.scene.BuildTree(rt.config.KdDepth, rt.config.KdLeafSize)
	}
}

// TracePixel traces the primary ray for pixel (i, j) and writes the
// clamped result into the buffer
func (rt *RayTracer) TracePixel(i, j int) core.Vec3 {
	x := float64(i) / float64(rt.width)
	y := float64(j) / float64(rt.height)

	color := rt.trace(x, y)
	rt.SetPixel(i, j, color)
	return color
}

// trace fires a full-weight camera ray through normalized window
// coordinates and clamps the result to [0,1]
func (rt *RayTracer) trace(x, y float64) core.Vec3 {
	r := rt.scene.Camera().RayThrough(x, y)
	color, _ := rt.TraceRay(r, core.NewVec3(1, 1, 1), rt.config.Depth)
	return color.Clamp(0, 1)
}

// TraceRay recursively traces a ray, returning the accumulated color and
// the hit parameter t (NoHitT on a miss or terminated recursion).
// Reflection and refraction are independent and additive: both may fire
// on the same hit.
func (rt *RayTracer) TraceRay(r core.Ray, weight core.Vec3, depth int) (core.Vec3, float64) {
	// Recursion budget exhausted: normal termination, zero contribution
	if depth < 0 {
		return core.Vec3{}, core.NoHitT
	}

	// Importance cutoff: further recursion cannot contribute visibly
	if weight.BelowThreshold(rt.config.Threshold) {
		return core.Vec3{}, core.NoHitT
	}

	i, ok := rt.scene.Intersect(r)
	if !ok {
		if bg := rt.scene.Background(); bg != nil {
			return bg.Sample(r), core.NoHitT
		}
		return core.Vec3{}, core.NoHitT
	}

	m := i.Material
	t := i.T
	color := m.Shade(rt.scene, r, i)

	position := r.At(i.T)
	d := r.Direction.Normalize()
	n := i.Normal.Normalize()

	if m.Refl() {
		// Mirror reflection: d - 2(d·n)n
		direction := d.Subtract(n.Multiply(2 * d.Dot(n))).Normalize()

		reflect := core.NewRay(position.Add(direction.Multiply(core.RayEpsilon)), direction, core.Reflection)
		reflect.Weight = weight.MultiplyVec(m.Kr())

		reflected, _ := rt.TraceRay(reflect, reflect.Weight, depth-1)
		color = color.Add(m.Kr().MultiplyVec(reflected))
	}

	if m.Trans() {
		// d·n > 0 means the normal points against the incoming side, so
		// the ray is exiting the medium
		normalSign := n
		var nCurrent, nOther float64
		if d.Dot(n) > 0 {
			nCurrent, nOther = m.Index(), 1
			normalSign = n.Negate()
		} else {
			nCurrent, nOther = 1, m.Index()
		}

		eta := nCurrent / nOther
		cosTheta := math.Abs(normalSign.Dot(d))
		w := eta * cosTheta
		k := 1 + (w-eta)*(w+eta)

		// k <= 0 is total internal reflection: a normal branch outcome,
		// no refracted ray is spawned
		if k > 0 {
			direction := normalSign.Multiply(w - math.Sqrt(k)).Add(d.Multiply(eta)).Normalize()

			refract := core.NewRay(position.Add(direction.Multiply(core.RayEpsilon)), direction, core.Refraction)
			refract.Weight = weight.MultiplyVec(m.Kt())

			refracted, _ := rt.TraceRay(refract, refract.Weight, depth-1)
			color = color.Add(m.Kt().MultiplyVec(refracted))
		}
	}

	return color, t
}

// Buffer exposes the pixel buffer and its dimensions to consumers
func (rt *RayTracer) Buffer() ([]byte, int, int) {
	return rt.buffer, rt.width, rt.height
}

// GetPixel reads a pixel from the buffer as a [0,1] color
func (rt *RayTracer) GetPixel(i, j int) core.Vec3 {
	return rt.pixelFrom(rt.buffer, i, j)
}

// SetPixel writes a [0,1] color into the buffer
func (rt *RayTracer) SetPixel(i, j int, color core.Vec3) {
	p := (i + j*rt.width) * 3
	rt.buffer[p] = byte(255.0 * color.X)
	rt.buffer[p+1] = byte(255.0 * color.Y)
	rt.buffer[p+2] = byte(255.0 * color.Z)
}

// AspectRatio returns the scene camera's aspect ratio
func (rt *RayTracer) AspectRatio() float64 {
	return rt.scene.Camera().AspectRatio()
}

// Image copies the buffer into an RGBA image, with row 0 at the top
func (rt *RayTracer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, rt.width, rt.height))

	for j := 0; j < rt.height; j++ {
		for i := 0; i < rt.width; i++ {
			p := (i + j*rt.width) * 3
			// Pixel (0,0) is the bottom-left of the render
			offset := img.PixOffset(i, rt.height-1-j)
			img.Pix[offset] = rt.buffer[p]
			img.Pix[offset+1] = rt.buffer[p+1]
			img.Pix[offset+2] = rt.buffer[p+2]
			img.Pix[offset+3] = 255
		}
	}

	return img
}
