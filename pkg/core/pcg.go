package core

const (
	pcgMultiplier    = 6364136223846793005
	pcgDefaultStream = 0xdeadbeef
	pcgWarmup        = 10
	pcgScale         = 1.0 / (1 << 32)
)

// PCGSampler is a 32-bit PCG generator (XSH-RR output over 64-bit LCG state).
// It is not safe for concurrent use; give each worker or tile its own.
type PCGSampler struct {
	state uint64
	inc   uint64
}

// NewPCGSampler creates a sampler on the default stream
func NewPCGSampler(seed uint64) *PCGSampler {
	return NewPCGSamplerStream(seed, pcgDefaultStream)
}

// NewPCGSamplerStream creates a sampler on the given stream.
// The increment is forced odd and the first draws are discarded.
func NewPCGSamplerStream(seed, stream uint64) *PCGSampler {
	s := &PCGSampler{state: seed, inc: stream | 1}
	for i := 0; i < pcgWarmup; i++ {
		s.Uint32()
	}
	return s
}

// Uint32 advances the generator and returns the next output
func (s *PCGSampler) Uint32() uint32 {
	old := s.state
	s.state = old*pcgMultiplier + s.inc
	xorshifted := uint32(((old >> 18) ^ old) >> 27)
	rot := uint32(old >> 59)
	return (xorshifted >> rot) | (xorshifted << ((-rot) & 31))
}

// Get1D returns a float in [0, 1)
func (s *PCGSampler) Get1D() float64 {
	return float64(s.Uint32()) * pcgScale
}

// Get2D returns two independent floats in [0, 1)
func (s *PCGSampler) Get2D() Vec2 {
	x := s.Get1D()
	y := s.Get1D()
	return Vec2{x, y}
}

// Get3D returns three independent floats in [0, 1)
func (s *PCGSampler) Get3D() Vec3 {
	x := s.Get1D()
	y := s.Get1D()
	z := s.Get1D()
	return Vec3{x, y, z}
}
