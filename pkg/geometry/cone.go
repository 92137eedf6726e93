package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Cone represents a finite cone or frustum shape
type Cone struct {
	BaseCenter core.Vec3
	BaseRadius float64
	TopCenter  core.Vec3
	TopRadius  float64 // 0 for pointed cone, >0 for frustum
	Capped     bool    // Whether to include circular end cap(s)
	Material   core.Material

	// Cached derived values
	axis     core.Vec3 // Unit vector from base to top
	height   float64   // Distance between base and top
	tanAngle float64   // tan(cone angle) = (BaseRadius - TopRadius) / height
	apex     core.Vec3 // Apex of the infinite cone extended from the frustum
	bbox     core.AABB
}

// NewCone creates a new cone or frustum
func NewCone(baseCenter core.Vec3, baseRadius float64, topCenter core.Vec3, topRadius float64, capped bool, material core.Material) (*Cone, error) {
	if baseRadius <= 0 {
		return nil, fmt.Errorf("base radius must be positive, got %f", baseRadius)
	}
	if topRadius < 0 {
		return nil, fmt.Errorf("top radius must be non-negative, got %f", topRadius)
	}
	if baseRadius <= topRadius {
		return nil, fmt.Errorf("base radius must be greater than top radius for a cone (got base=%f, top=%f), use Cylinder for equal radii", baseRadius, topRadius)
	}

	axisVector := topCenter.Subtract(baseCenter)
	height := axisVector.Length()
	if height <= 0 {
		return nil, fmt.Errorf("height must be positive (base and top centers cannot be the same)")
	}

	axis := axisVector.Normalize()
	tanAngle := (baseRadius - topRadius) / height

	// Apex of the extended infinite cone: the top center itself for a
	// pointed cone, beyond the top where the radius reaches 0 for a frustum
	apex := topCenter
	if topRadius > 0 {
		dFromTop := topRadius * height / (baseRadius - topRadius)
		apex = topCenter.Add(axis.Multiply(dFromTop))
	}

	c := &Cone{
		BaseCenter: baseCenter,
		BaseRadius: baseRadius,
		TopCenter:  topCenter,
		TopRadius:  topRadius,
		Capped:     capped,
		Material:   material,
		axis:       axis,
		height:     height,
		tanAngle:   tanAngle,
		apex:       apex,
	}

	// Conservative bounds: the axis segment extended by the base radius
	segment := core.NewAABBFromPoints(baseCenter, topCenter)
	extent := core.NewVec3(baseRadius, baseRadius, baseRadius)
	c.bbox = core.NewAABB(segment.Min.Subtract(extent), segment.Max.Add(extent))

	return c, nil
}

// Intersect returns the nearest hit with t > RayEpsilon, testing the
// curved body and, when capped, the circular end discs
func (c *Cone) Intersect(ray core.Ray) (core.Isect, bool) {
	best := core.NewIsect()

	if body, ok := c.intersectBody(ray); ok && body.T < best.T {
		best = body
	}

	if c.Capped {
		if capHit, ok := c.intersectCap(ray, c.BaseCenter, c.axis.Negate(), c.BaseRadius); ok && capHit.T < best.T {
			best = capHit
		}
		// Frustums have a second cap at the top
		if c.TopRadius > 0 {
			if capHit, ok := c.intersectCap(ray, c.TopCenter, c.axis, c.TopRadius); ok && capHit.T < best.T {
				best = capHit
			}
		}
	}

	return best, best.Hit()
}

// intersectBody checks for intersection with the curved cone surface
func (c *Cone) intersectBody(ray core.Ray) (core.Isect, bool) {
	// Vector from apex to ray origin
	co := ray.Origin.Subtract(c.apex)

	dDotV := ray.Direction.Dot(c.axis)
	coDotV := co.Dot(c.axis)

	// Quadratic coefficients for the infinite cone with k = tan²(α)
	k := c.tanAngle * c.tanAngle
	a := ray.Direction.LengthSquared() - (1+k)*dDotV*dDotV
	b := 2.0 * (ray.Direction.Dot(co) - (1+k)*dDotV*coDotV)
	cc := co.LengthSquared() - (1+k)*coDotV*coDotV

	const epsilon = 1e-8
	if math.Abs(a) < epsilon {
		return core.NewIsect(), false
	}

	discriminant := b*b - 4*a*cc
	if discriminant < 0 {
		return core.NewIsect(), false
	}

	sqrtD := math.Sqrt(discriminant)

	for _, t := range [2]float64{(-b - sqrtD) / (2 * a), (-b + sqrtD) / (2 * a)} {
		if t <= core.RayEpsilon {
			continue
		}
		point := ray.At(t)
		h := point.Subtract(c.BaseCenter).Dot(c.axis)
		if h < 0 || h > c.height {
			continue
		}

		// Normal: radial direction tilted up the slope by the cone angle
		centerPoint := c.BaseCenter.Add(c.axis.Multiply(h))
		radial := point.Subtract(centerPoint).Normalize()
		normal := radial.Add(c.axis.Multiply(c.tanAngle)).Normalize()

		return core.Isect{
			T:        t,
			Normal:   normal,
			Material: c.Material,
		}, true
	}

	return core.NewIsect(), false
}

// intersectCap checks for intersection with a circular end cap
func (c *Cone) intersectCap(ray core.Ray, center, normal core.Vec3, radius float64) (core.Isect, bool) {
	denominator := ray.Direction.Dot(normal)
	if math.Abs(denominator) < 1e-8 {
		return core.NewIsect(), false
	}

	t := center.Subtract(ray.Origin).Dot(normal) / denominator
	if t <= core.RayEpsilon {
		return core.NewIsect(), false
	}

	point := ray.At(t)
	if point.Subtract(center).LengthSquared() > radius*radius {
		return core.NewIsect(), false
	}

	return core.Isect{
		T:        t,
		Normal:   normal,
		Material: c.Material,
	}, true
}

// BoundingBox returns the axis-aligned bounding box for this cone
func (c *Cone) BoundingBox() core.AABB {
	return c.bbox
}

// Normal returns the degenerate tie-break normal (zero for a cone)
func (c *Cone) Normal() core.Vec3 {
	return core.Vec3{}
}
