package core

import (
	"math/rand/v2"
)

// MaxRejectionAttempts bounds the rejection sampling loops. A uniform generator
// accepts a unit-sphere candidate with probability ~0.52, so this is never
// reached in practice.
const MaxRejectionAttempts = 1 << 16

// Sampler provides random sampling for rendering algorithms
// Can be swapped out for deterministic testing
type Sampler interface {
	Get1D() float64
}

// RandomSampler wraps a seeded PCG generator
type RandomSampler struct {
	random *rand.Rand
	pcg    *rand.PCG // Source of random, kept for reseeding
}

// NewSeededSampler creates a sampler whose stream is fully determined by seed
func NewSeededSampler(seed uint64) *RandomSampler {
	pcg := rand.NewPCG(seed, seed^pcgStream)
	return &RandomSampler{random: rand.New(pcg), pcg: pcg}
}

// Reseed restarts the stream as if the sampler were newly created with
// NewSeededSampler(seed)
func (r *RandomSampler) Reseed(seed uint64) {
	r.pcg.Seed(seed, seed^pcgStream)
}

// pcgStream decorrelates the two PCG state words derived from one seed
const pcgStream = 0x9e3779b97f4a7c15

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Uint64 returns a random 64-bit value, used for seed derivation
func (r *RandomSampler) Uint64() uint64 {
	return r.random.Uint64()
}

// SamplePointInUnitSphere returns a point uniformly distributed inside the unit
// sphere by rejection sampling the [-1,1]³ cube. Components are drawn X, Y, Z.
func SamplePointInUnitSphere(sampler Sampler) Vec3 {
	for range MaxRejectionAttempts {
		p := Vec3{
			X: 2*sampler.Get1D() - 1,
			Y: 2*sampler.Get1D() - 1,
			Z: 2*sampler.Get1D() - 1,
		}
		if p.LengthSquared() < 1.0 {
			return p
		}
	}
	return Vec3{}
}

// SamplePointInUnitDisk returns a point uniformly distributed inside the unit
// disk in the XY plane by rejection sampling the [-1,1]² square.
func SamplePointInUnitDisk(sampler Sampler) Vec3 {
	for range MaxRejectionAttempts {
		p := Vec3{X: 2*sampler.Get1D() - 1, Y: 2*sampler.Get1D() - 1}
		if p.Dot(p) < 1.0 {
			return p
		}
	}
	return Vec3{}
}
