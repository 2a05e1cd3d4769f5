package motiontracer

import (
	"github.com/saiko-tech/motion-tracer/pkg/motiontracer/mollertrumbore"
)

// IntersectMotionTriangle tests ray against a single motion triangle: the
// vertices are interpolated to the ray time and intersected, then the
// primitive's visibility flags are filtered against the ray's mask.
// On a hit the record is written to isect and true is returned; on a
// geometric miss or a filtered hit, isect is left untouched.
//
// Promotion of the hit to "closest so far" and any subsequent refinement is
// the traversal's responsibility.
func (s *Scene) IntersectMotionTriangle(isect *Intersection, ray Ray, obj, prim, primAddr int, visibility uint32) bool {
	verts := s.objects[obj].mesh.VerticesAtTime(prim, ray.Time)

	r := mollertrumbore.RayIntersectsTriangle(ray.Origin, ray.Direction, ray.TMax, verts)
	if !r.Hit {
		return false
	}

	// Visibility test after the geometric one, under the assumption that
	// most triangles are culled by the geometry.
	if s.primVisibility(primAddr)&visibility == 0 {
		return false
	}

	isect.T = r.T
	isect.U = r.U
	isect.V = r.V
	isect.Prim = prim
	isect.Object = obj
	isect.Type = PrimitiveMotionTriangle

	return true
}
