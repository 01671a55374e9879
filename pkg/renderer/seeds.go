package renderer

import (
	"github.com/df07/go-sphere-tracer/pkg/core"
)

// SeedPlan fixes every pixel's random seed before any rendering starts.
// Pixels are indexed in output scan order: rows from the top of the
// image (j = height-1) down, columns left to right, which is the same as
// raster index y*width + x.
type SeedPlan struct {
	width, height int
	pixelSeeds    []uint64
}

// NewSeedPlan derives one seed per pixel from the global seed with a single
// serial pass over the scan order
func NewSeedPlan(seed uint64, width, height int) *SeedPlan {
	master := core.NewSeededSampler(seed)

	pixelSeeds := make([]uint64, width*height)
	for k := range pixelSeeds {
		pixelSeeds[k] = master.Uint64()
	}

	return &SeedPlan{width: width, height: height, pixelSeeds: pixelSeeds}
}

// PixelSeed returns the seed of the pixel at scan index k
func (sp *SeedPlan) PixelSeed(k int) uint64 {
	return sp.pixelSeeds[k]
}

// SampleSeeds derives the per-sample seeds of pixel k with a serial pass over
// the pixel's own stream. The result depends only on the pixel seed, so any
// worker may compute it in any order.
func (sp *SeedPlan) SampleSeeds(k, samples int) []uint64 {
	return appendSampleSeeds(nil, sp.pixelSeeds[k], samples)
}

// appendSampleSeeds appends n sample seeds derived from pixelSeed to dst
func appendSampleSeeds(dst []uint64, pixelSeed uint64, n int) []uint64 {
	stream := core.NewSeededSampler(pixelSeed)
	for range n {
		dst = append(dst, stream.Uint64())
	}
	return dst
}

// ScanIndex converts a raster pixel (x, y) with y growing downward to its scan index
func (sp *SeedPlan) ScanIndex(x, y int) int {
	return y*sp.width + x
}

// Len returns the number of pixels in the plan
func (sp *SeedPlan) Len() int {
	return len(sp.pixelSeeds)
}
