package material

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Phong is a surface material with emissive, ambient, diffuse, specular,
// reflective, and transmissive coefficients
type Phong struct {
	Ke        core.Vec3 // Emissive color
	Ka        core.Vec3 // Ambient coefficient
	Kd        core.Vec3 // Diffuse coefficient
	Ks        core.Vec3 // Specular coefficient
	Reflect   core.Vec3 // Reflectance coefficient (kr)
	Transmit  core.Vec3 // Transmittance coefficient (kt)
	Shininess float64   // Specular exponent
	RefIndex  float64   // Refractive index
}

// NewDiffuse creates a matte material with the given diffuse color
func NewDiffuse(color core.Vec3) *Phong {
	return &Phong{
		Ka:        color.Multiply(0.1),
		Kd:        color,
		Shininess: 1,
		RefIndex:  1,
	}
}

// NewReflective creates a shiny material with a mirror component
func NewReflective(color, kr core.Vec3, shininess float64) *Phong {
	return &Phong{
		Ka:        color.Multiply(0.1),
		Kd:        color,
		Ks:        kr,
		Reflect:   kr,
		Shininess: shininess,
		RefIndex:  1,
	}
}

// NewTransmissive creates a glass-like material with the given
// transmittance and refractive index
func NewTransmissive(kt core.Vec3, index float64) *Phong {
	return &Phong{
		Ks:        core.NewVec3(0.3, 0.3, 0.3),
		Reflect:   core.NewVec3(0.1, 0.1, 0.1),
		Transmit:  kt,
		Shininess: 64,
		RefIndex:  index,
	}
}

// Kr returns the reflectance coefficient
func (m *Phong) Kr() core.Vec3 { return m.Reflect }

// Kt returns the transmittance coefficient
func (m *Phong) Kt() core.Vec3 { return m.Transmit }

// Index returns the refractive index
func (m *Phong) Index() float64 { return m.RefIndex }

// Refl reports whether the material spawns reflection rays
func (m *Phong) Refl() bool {
	return m.Reflect.X > 0 || m.Reflect.Y > 0 || m.Reflect.Z > 0
}

// Trans reports whether the material spawns refraction rays
func (m *Phong) Trans() bool {
	return m.Transmit.X > 0 || m.Transmit.Y > 0 || m.Transmit.Z > 0
}

// Shade computes the local Phong color at a hit: emissive + ambient +
// per-light shadow- and distance-attenuated diffuse and specular terms
func (m *Phong) Shade(scene core.Scene, r core.Ray, i core.Isect) core.Vec3 {
	point := r.At(i.T)
	normal := i.Normal.Normalize()
	view := r.Direction.Normalize().Negate()

	// Shade the side of the surface the ray actually hit
	if normal.Dot(view) < 0 {
		normal = normal.Negate()
	}

	color := m.Ke.Add(m.Ka.MultiplyVec(scene.Ambient()))

	for _, light := range scene.Lights() {
		lightDir := light.Direction(point)

		diffuse := normal.Dot(lightDir)
		if diffuse < 0 {
			diffuse = 0
		}

		// Mirror the light direction about the normal for the specular lobe
		reflected := normal.Multiply(2 * lightDir.Dot(normal)).Subtract(lightDir)
		specular := reflected.Dot(view)
		if specular < 0 {
			specular = 0
		}
		specular = math.Pow(specular, m.Shininess)

		contribution := m.Kd.Multiply(diffuse).Add(m.Ks.Multiply(specular))
		attenuation := light.ShadowAttenuation(scene, point).
			Multiply(light.DistanceAttenuation(point))

		color = color.Add(contribution.MultiplyVec(attenuation))
	}

	return color
}
