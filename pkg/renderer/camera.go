package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Camera generates primary rays through normalized window coordinates
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	aspectRatio     float64
}

// NewCamera creates a look-at perspective camera. fovDegrees is the
// vertical field of view; aspectRatio is width over height.
func NewCamera(eye, lookAt, up core.Vec3, fovDegrees, aspectRatio float64) *Camera {
	theta := fovDegrees * math.Pi / 180.0
	viewportHeight := 2.0 * math.Tan(theta/2)
	viewportWidth := aspectRatio * viewportHeight

	// Orthonormal camera basis
	w := eye.Subtract(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeftCorner := eye.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w)

	return &Camera{
		origin:          eye,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		aspectRatio:     aspectRatio,
	}
}

// RayThrough generates a visibility ray through normalized window
// coordinates (x, y) where 0 <= x,y <= 1
func (c *Camera) RayThrough(x, y float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(x)).
		Add(c.vertical.Multiply(y)).
		Subtract(c.origin).
		Normalize()

	return core.NewRay(c.origin, direction, core.Visibility)
}

// AspectRatio returns the camera's aspect ratio
func (c *Camera) AspectRatio() float64 {
	return c.aspectRatio
}
