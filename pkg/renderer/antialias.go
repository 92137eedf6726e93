package renderer

import "github.com/df07/go-whitted-raytracer/pkg/core"

// antialiasWorker re-samples the boundary pixels of this worker's
// strided subset. Boundary detection reads from the primary-pass
// snapshot, replacement colors are written to the live buffer.
func (rt *RayTracer) antialiasWorker(id int, snapshot []byte) {
	total := rt.width * rt.height
	for p := id; p < total; p += rt.config.Threads {
		i := p % rt.width
		j := p / rt.width

		if !rt.onBoundary(snapshot, i, j) {
			continue
		}

		rt.workers.boundaryPixels.Add(1)
		rt.SetPixel(i, j, rt.supersample(i, j))
	}
}

// onBoundary compares pixel (i, j) against its up-to-8 immediate
// neighbors; any per-channel difference above the configured threshold
// marks the pixel as lying on a color boundary
func (rt *RayTracer) onBoundary(snapshot []byte, i, j int) bool {
	color := rt.pixelFrom(snapshot, i, j)

	for a := -1; a <= 1; a++ {
		if i+a < 0 || i+a >= rt.width {
			continue
		}
		for b := -1; b <= 1; b++ {
			if a == 0 && b == 0 {
				continue
			}
			if j+b < 0 || j+b >= rt.height {
				continue
			}

			diff := rt.pixelFrom(snapshot, i+a, j+b).Subtract(color).Abs()
			if diff.MaxComponent() > rt.config.AAThreshold {
				return true
			}
		}
	}

	return false
}

// supersample averages an NxN grid of sub-pixel samples across the
// pixel's footprint
func (rt *RayTracer) supersample(i, j int) core.Vec3 {
	samples := rt.config.SuperSamples
	xOffset := 1.0 / float64(rt.width*samples)
	yOffset := 1.0 / float64(rt.height*samples)
	totalSamples := float64(samples * samples)

	x := (float64(i) - 0.5) / float64(rt.width)
	y := (float64(j) - 0.5) / float64(rt.height)

	color := core.Vec3{}
	for a := 0; a < samples; a++ {
		xSample := x + float64(a)*xOffset
		for b := 0; b < samples; b++ {
			ySample := y + float64(b)*yOffset
			color = color.Add(rt.trace(xSample, ySample).Multiply(1.0 / totalSamples))
		}
	}

	return color
}

// pixelFrom reads a pixel from an arbitrary RGB buffer with this
// tracer's dimensions
func (rt *RayTracer) pixelFrom(buffer []byte, i, j int) core.Vec3 {
	p := (i + j*rt.width) * 3
	return core.NewVec3(
		float64(buffer[p])/255.0,
		float64(buffer[p+1])/255.0,
		float64(buffer[p+2])/255.0,
	)
}
