package renderer

import (
	"image"

	"github.com/df07/go-sphere-tracer/pkg/core"
	"github.com/df07/go-sphere-tracer/pkg/geometry"
	"github.com/df07/go-sphere-tracer/pkg/integrator"
)

// TileRenderer renders individual tiles into a shared pixel buffer. Every
// pixel is a pure function of its seed, so tiles may run in any order on any
// goroutine as long as their bounds do not overlap.
type TileRenderer struct {
	world      geometry.Shape
	camera     *Camera
	integrator integrator.Integrator
	plan       *SeedPlan
	width      int
	height     int
	samples    int
	pixels     []PixelStats // Indexed by scan index
}

// NewTileRenderer creates a tile renderer writing into pixels, which must hold
// width*height entries
func NewTileRenderer(world geometry.Shape, camera *Camera, integratorInst integrator.Integrator, plan *SeedPlan, width, height, samples int, pixels []PixelStats) *TileRenderer {
	return &TileRenderer{
		world:      world,
		camera:     camera,
		integrator: integratorInst,
		plan:       plan,
		width:      width,
		height:     height,
		samples:    samples,
		pixels:     pixels,
	}
}

// RenderTileBounds renders all pixels within bounds
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) RenderStats {
	stats := RenderStats{}
	sampler := core.NewSeededSampler(0)
	seeds := make([]uint64, 0, tr.samples)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			k := tr.plan.ScanIndex(x, y)
			seeds = appendSampleSeeds(seeds[:0], tr.plan.PixelSeed(k), tr.samples)
			tr.samplePixel(x, y, seeds, sampler, &tr.pixels[k])

			stats.TotalPixels++
			stats.TotalSamples += tr.samples
		}
	}

	return stats
}

// samplePixel evaluates one camera path per sample seed for raster pixel (x, y)
func (tr *TileRenderer) samplePixel(x, y int, seeds []uint64, sampler *core.RandomSampler, ps *PixelStats) {
	i := float64(x)
	j := float64(tr.height - 1 - y)
	width := float64(tr.width)
	height := float64(tr.height)

	*ps = PixelStats{}
	for _, seed := range seeds {
		sampler.Reseed(seed)

		u := (i + sampler.Get1D()) / width
		v := (j + sampler.Get1D()) / height
		ray := tr.camera.GetRay(u, v, sampler)

		ps.AddSample(tr.integrator.RayColor(ray, tr.world, sampler))
	}
}
