package mollertrumbore

import "github.com/go-gl/mathgl/mgl32"

const mollerTrumboreEpsilon = float32(0.0000001)

type RayCastResult struct {
	Hit     bool
	U, V, T float32
}

// RayIntersectsTriangle determines if a ray intersects a triangle using https://en.wikipedia.org/wiki/M%C3%B6ller%E2%80%93Trumbore_intersection_algorithm
// and returns the barycentric coordinates (u, v) and the hit distance t on acceptance.
// Edges are anchored at vertex 2, so u weights vertex 0 and v weights vertex 1
// and the hit point is (1-u-v)*tri[2] + u*tri[0] + v*tri[1].
// t is only accepted inside (0, tMax); the positive bound also rejects the
// Inf/NaN distances a near-degenerate divisor can produce.
func RayIntersectsTriangle(rayOrigin, rayVector mgl32.Vec3, tMax float32, inTriangle [3]mgl32.Vec3) (r RayCastResult) {
	var (
		edge1, edge2, h, s, q mgl32.Vec3
		a, f, u, v            float32
	)

	edge1 = inTriangle[0].Sub(inTriangle[2])
	edge2 = inTriangle[1].Sub(inTriangle[2])
	h = rayVector.Cross(edge2)
	a = edge1.Dot(h)

	if a > -mollerTrumboreEpsilon && a < mollerTrumboreEpsilon {
		return r // This ray is parallel to this triangle.
	}

	f = 1.0 / a
	s = rayOrigin.Sub(inTriangle[2])
	u = f * s.Dot(h)

	if u < 0.0 || u > 1.0 {
		return r
	}

	q = s.Cross(edge1)
	v = f * rayVector.Dot(q)

	if v < 0.0 || u+v > 1.0 {
		return r
	}
	// At this stage we can compute t to find out where the intersection point is on the line.
	t := f * edge2.Dot(q)

	if t > mollerTrumboreEpsilon && t < tMax { // ray intersection
		r.Hit = true
		r.U = u
		r.V = v
		r.T = t

		return r
	}

	// This means that there is a line intersection but not a ray intersection.
	return r
}
