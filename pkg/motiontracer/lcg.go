package motiontracer

// UniformStream is a caller-owned pseudo-random stream consumed by the local
// intersector's reservoir sampling. It is advanced in place, exactly once per
// candidate that reaches the sampling decision.
type UniformStream interface {
	NextUint32() uint32
}

// LCG is a 32-bit linear congruential generator. Cheap enough for per-hit
// reservoir draws and its whole state is a single caller-visible word.
type LCG struct {
	state uint32
}

// NewLCG returns a generator seeded with the given state.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// NextUint32 advances the state and returns it.
func (l *LCG) NextUint32() uint32 {
	l.state = l.state*1103515245 + 12345
	return l.state
}
