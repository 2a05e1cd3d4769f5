package motiontracer

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/saiko-tech/motion-tracer/pkg/motiontracer/mollertrumbore"
)

// LocalIntersection collects multiple hits on the same object within a fixed
// caller-supplied capacity. NumHits counts every accepted candidate and may
// exceed the stored-slot count: once it does, it is the reservoir population
// size, not the storage occupancy.
type LocalIntersection struct {
	Hits    []Intersection
	Ng      []mgl32.Vec3 // geometric normal per stored slot
	NumHits int
}

// NewLocalIntersection allocates a buffer able to store up to maxHits hits.
func NewLocalIntersection(maxHits int) *LocalIntersection {
	return &LocalIntersection{
		Hits: make([]Intersection, maxHits),
		Ng:   make([]mgl32.Vec3, maxHits),
	}
}

// Reset clears the buffer for reuse on a new ray query.
func (l *LocalIntersection) Reset() {
	l.NumHits = 0
}

// reservoirSlot decides where the numHits'th accepted candidate lands. While
// the buffer has free capacity the candidate takes the next free slot and the
// stream is not consumed. Beyond capacity one uniform draw selects a slot in
// [0, numHits); the candidate replaces it, or is discarded when the index
// falls outside the retained range, which keeps every candidate seen so far
// represented with probability maxHits/numHits.
func reservoirSlot(stream UniformStream, numHits, maxHits int) (slot int, keep bool) {
	if numHits <= maxHits {
		return numHits - 1, true
	}

	slot = int(stream.NextUint32() % uint32(numHits))
	if slot >= maxHits {
		return 0, false
	}

	return slot, true
}

// IntersectMotionTriangleLocal tests ray against a single motion triangle and
// records the hit into local, keeping at most maxHits hits per traversal.
//
// With maxHits == 0 a geometric hit only signals existence: true is returned
// and the buffer is untouched. With a nil stream only the closest hit is
// tracked in slot 0. With a stream, hits beyond capacity are kept by
// reservoir sampling, and a candidate whose distance exactly matches a stored
// hit is dropped as a re-visit of the same primitive. The duplicate scan
// inspects at most min(maxHits, NumHits) most-recent slots; a duplicate whose
// stored record was already evicted by reservoir replacement is admitted
// again, a deliberate bound on the scan cost.
//
// maxHits must not exceed the buffer's capacity. Apart from the existence
// check, the return value is always false: collecting multiple hits never
// stops traversal.
func (s *Scene) IntersectMotionTriangleLocal(local *LocalIntersection, ray Ray, obj, prim, primAddr, maxHits int, stream UniformStream) bool {
	verts := s.objects[obj].mesh.VerticesAtTime(prim, ray.Time)

	r := mollertrumbore.RayIntersectsTriangle(ray.Origin, ray.Direction, ray.TMax, verts)
	if !r.Hit {
		return false
	}

	// If no actual hit information is requested, just return here.
	if maxHits == 0 {
		return true
	}

	var hit int
	if stream != nil {
		scan := local.NumHits
		if scan > maxHits {
			scan = maxHits
		}
		for i := scan - 1; i >= 0; i-- {
			if local.Hits[i].T == r.T {
				return false
			}
		}

		local.NumHits++

		var keep bool
		hit, keep = reservoirSlot(stream, local.NumHits, maxHits)
		if !keep {
			return false
		}
	} else {
		// Record closest intersection only.
		if local.NumHits > 0 && r.T >= local.Hits[0].T {
			return false
		}

		hit = 0
		local.NumHits = 1
	}

	local.Hits[hit] = Intersection{
		T:      r.T,
		U:      r.U,
		V:      r.V,
		Prim:   prim,
		Object: obj,
		Type:   PrimitiveMotionTriangle,
	}

	// Geometric normal of the time-sampled triangle, not the rest pose.
	local.Ng[hit] = verts[1].Sub(verts[0]).Cross(verts[2].Sub(verts[0])).Normalize()

	return false
}
