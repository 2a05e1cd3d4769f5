package motiontracer

import "github.com/go-gl/mathgl/mgl32"

// Trace captures the result of a nearest-hit query.
type Trace struct {
	Hit          bool
	Intersection Intersection
	Position     mgl32.Vec3 // refined world-space hit position
}

// TraceRay intersects ray against every motion triangle in the scene and
// returns the closest hit visible to the given ray mask, with its position
// refined. This is the linear-scan stand-in for an acceleration-structure
// traversal; the per-primitive work is identical.
func (s *Scene) TraceRay(ray Ray, visibility uint32) *Trace {
	out := &Trace{}

	r := ray
	for obj := range s.objects {
		o := &s.objects[obj]

		// Bring the ray into the space the vertices are stored in. The
		// direction is deliberately not renormalized so that hit
		// distances stay comparable across objects.
		objRay := r
		if !o.transformApplied {
			objRay.Origin = mgl32.TransformCoordinate(r.Origin, o.inverseTransform)
			objRay.Direction = mgl32.TransformNormal(r.Direction, o.inverseTransform)
		}

		if !rayIntersectsBounds(objRay.Origin, objRay.Direction, o.boundsMin, o.boundsMax) {
			continue
		}

		for prim := range o.mesh.Triangles {
			var isect Intersection
			if s.IntersectMotionTriangle(&isect, objRay, obj, prim, o.primAddrBase+prim, visibility) {
				r.TMax = isect.T
				objRay.TMax = isect.T
				out.Intersection = isect
				out.Hit = true
			}
		}
	}

	if out.Hit {
		isect := &out.Intersection
		verts := s.objects[isect.Object].mesh.VerticesAtTime(isect.Prim, ray.Time)
		out.Position = s.RefinePosition(isect, ray.Origin, ray.Direction, verts)
	}

	return out
}

// TraceRayLocal collects up to maxHits intersections of ray with a single
// object into local. See IntersectMotionTriangleLocal for the buffer,
// stream and maxHits semantics. Returns true only for the maxHits == 0
// existence check.
func (s *Scene) TraceRayLocal(local *LocalIntersection, ray Ray, obj, maxHits int, stream UniformStream) bool {
	o := &s.objects[obj]

	objRay := ray
	if !o.transformApplied {
		objRay.Origin = mgl32.TransformCoordinate(ray.Origin, o.inverseTransform)
		objRay.Direction = mgl32.TransformNormal(ray.Direction, o.inverseTransform)
	}

	if !rayIntersectsBounds(objRay.Origin, objRay.Direction, o.boundsMin, o.boundsMax) {
		return false
	}

	for prim := range o.mesh.Triangles {
		if s.IntersectMotionTriangleLocal(local, objRay, obj, prim, o.primAddrBase+prim, maxHits, stream) {
			return true
		}
	}

	return false
}

// IsVisible returns true if destination is visible from origin at the given
// motion time, as computed by a shadow-masked ray trace.
func (s *Scene) IsVisible(origin, destination mgl32.Vec3, time float32) bool {
	dir := destination.Sub(origin)

	ray := Ray{
		Origin:    origin,
		Direction: dir.Normalize(),
		TMax:      dir.Len(),
		Time:      time,
	}

	return !s.TraceRay(ray, VisibilityShadow).Hit
}
