package scene

import "github.com/df07/go-whitted-raytracer/pkg/core"

// GradientBackground is a simple environment sampler blending between a
// bottom and top color by ray direction. It stands in for an external
// cube map behind the same contract.
type GradientBackground struct {
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// NewGradientBackground creates a vertical gradient environment
func NewGradientBackground(top, bottom core.Vec3) *GradientBackground {
	return &GradientBackground{TopColor: top, BottomColor: bottom}
}

// Sample blends the two colors by the ray direction's y component
func (g *GradientBackground) Sample(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	return g.BottomColor.Multiply(1.0 - t).Add(g.TopColor.Multiply(t))
}
