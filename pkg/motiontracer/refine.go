package motiontracer

import "github.com/go-gl/mathgl/mgl32"

// RefinePosition recomputes a numerically tighter hit position for a promoted
// hit. For rays that travel far the precision of origin + direction*t is
// often not good enough; this re-solves the ray-plane intersection from a
// point already advanced to the coarse hit, in the object's untransformed
// space, and adds only the corrective delta.
//
// verts must be the same three time-sampled vertices that produced the hit.
// isect.T is expected in world space.
func (s *Scene) RefinePosition(isect *Intersection, origin, direction mgl32.Vec3, verts [3]mgl32.Vec3) mgl32.Vec3 {
	o := &s.objects[isect.Object]
	P, D, t := origin, direction, isect.T

	if o.transformApplied {
		// Vertices already carry the instance transform; re-deriving
		// here would apply it twice.
		return P.Add(D.Mul(t))
	}

	if t == 0 {
		return P
	}

	P = mgl32.TransformCoordinate(P, o.inverseTransform)
	D = mgl32.TransformNormal(D.Mul(t), o.inverseTransform)
	t = D.Len()
	D = D.Mul(1 / t)

	P = P.Add(D.Mul(t))

	rt := refineDelta(P, D, verts)
	P = P.Add(D.Mul(rt))

	return mgl32.TransformCoordinate(P, o.transform)
}

// RefineLocalPosition refines a hit produced by a local (object-space) query.
// Backends that report world-space distances for local queries pass through
// to RefinePosition; otherwise isect.T is taken as an object-space distance
// and the direction is normalized without folding t into its length.
func (s *Scene) RefineLocalPosition(isect *Intersection, origin, direction mgl32.Vec3, verts [3]mgl32.Vec3) mgl32.Vec3 {
	if s.hitSpace == HitSpaceWorld {
		return s.RefinePosition(isect, origin, direction, verts)
	}

	o := &s.objects[isect.Object]
	P, D, t := origin, direction, isect.T

	if o.transformApplied {
		return P.Add(D.Mul(t))
	}

	P = mgl32.TransformCoordinate(P, o.inverseTransform)
	D = mgl32.TransformNormal(D, o.inverseTransform).Normalize()

	P = P.Add(D.Mul(t))

	rt := refineDelta(P, D, verts)
	P = P.Add(D.Mul(rt))

	return mgl32.TransformCoordinate(P, o.transform)
}

// refineDelta solves the ray-plane intersection for the corrective distance
// from an already-advanced point P, using the same edge parametrization as
// the intersection test.
func refineDelta(P, D mgl32.Vec3, verts [3]mgl32.Vec3) float32 {
	e1 := verts[0].Sub(verts[2])
	e2 := verts[1].Sub(verts[2])
	s1 := D.Cross(e2)

	invDivisor := 1 / s1.Dot(e1)
	d := P.Sub(verts[2])
	s2 := d.Cross(e1)

	return e2.Dot(s2) * invDivisor
}
