// Package motiontracer implements ray intersection against motion-blurred
// triangle meshes: triangle vertices are stored as time-sampled keyframes and
// interpolated to the ray time before the geometric test. The motion triangle
// primitive follows the approach of Blender's Cycles renderer.
package motiontracer

import "github.com/go-gl/mathgl/mgl32"

// HitSpace declares which coordinate space a traversal backend reports hit
// distances in. GPU ray-tracing backends report world-space distances even
// for object-local queries; software traversal reports object-space
// distances. The refiner dispatches on this once per scene configuration.
type HitSpace int

const (
	HitSpaceWorld HitSpace = iota
	HitSpaceObject
)

// PrimitiveType tags intersection records so that shading code can dispatch
// on primitive kind. Records written by this package always carry
// PrimitiveMotionTriangle; the layout is shared with the static triangle path.
type PrimitiveType uint8

const (
	PrimitiveTriangle PrimitiveType = iota
	PrimitiveMotionTriangle
)

// Visibility mask bits. A primitive is visible to a ray when the bitwise
// intersection of the primitive's flags and the ray's mask is non-zero.
const (
	VisibilityCamera uint32 = 1 << iota
	VisibilityShadow
	VisibilityDiffuse
	VisibilityGlossy
)

// VisibilityAll matches every ray mask.
const VisibilityAll = ^uint32(0)

// Ray is an intersection query: origin, direction, maximum valid distance and
// a motion time sample in [0, 1]. Immutable for the duration of one query.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
	TMax      float32
	Time      float32
}

// Intersection is a single hit record: distance along the ray, barycentric
// coordinates, primitive and object indices and the primitive-type tag.
type Intersection struct {
	T, U, V float32
	Prim    int
	Object  int
	Type    PrimitiveType
}

type object struct {
	mesh             *MotionMesh
	transform        mgl32.Mat4
	inverseTransform mgl32.Mat4
	transformApplied bool
	primAddrBase     int

	boundsMin, boundsMax mgl32.Vec3 // AABB extents over all motion steps
}

// Scene is the read-only data handle threaded through every intersection
// call: per-object meshes and instance transforms plus a flat per-primitive
// visibility array indexed by primitive address. A Scene is immutable once
// built, so concurrent ray queries need no synchronization.
type Scene struct {
	objects    []object
	visibility []uint32
	hitSpace   HitSpace
}

// NewScene creates an empty scene for a traversal backend that reports hit
// distances in the given coordinate space.
func NewScene(hitSpace HitSpace) *Scene {
	return &Scene{hitSpace: hitSpace}
}

// AddObject adds a mesh instance to the scene and returns its object index.
// transform maps object-local coordinates to world space. transformApplied
// marks meshes whose vertices are already stored in world space; the refiner
// must not re-apply the transform for those.
func (s *Scene) AddObject(mesh *MotionMesh, transform mgl32.Mat4, transformApplied bool) int {
	o := object{
		mesh:             mesh,
		transform:        transform,
		inverseTransform: transform.Inv(),
		transformApplied: transformApplied,
		primAddrBase:     len(s.visibility),
	}
	o.boundsMin, o.boundsMax = mesh.extents()

	if mesh.Visibility != nil {
		s.visibility = append(s.visibility, mesh.Visibility...)
	} else {
		for range mesh.Triangles {
			s.visibility = append(s.visibility, VisibilityAll)
		}
	}

	s.objects = append(s.objects, o)

	return len(s.objects) - 1
}

// PrimAddr returns the address of a primitive in the scene's flat primitive
// storage, for auxiliary per-primitive lookups such as visibility flags.
func (s *Scene) PrimAddr(obj, prim int) int {
	return s.objects[obj].primAddrBase + prim
}

func (s *Scene) primVisibility(primAddr int) uint32 {
	return s.visibility[primAddr]
}
