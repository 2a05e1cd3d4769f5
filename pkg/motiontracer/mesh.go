package motiontracer

import "github.com/go-gl/mathgl/mgl32"

// MotionMesh stores a triangle mesh as vertex positions sampled at a fixed
// number of evenly spaced time steps. A mesh with a single step is static.
type MotionMesh struct {
	// Triangles holds vertex indices into each step's vertex array.
	Triangles [][3]int

	// Steps holds one full vertex array per keyframe, at least one.
	// All steps have the same length.
	Steps [][]mgl32.Vec3

	// Visibility holds per-triangle visibility flags. A nil slice means
	// every triangle is visible to all rays.
	Visibility []uint32
}

// NewStaticMesh wraps a single vertex keyframe as a mesh without motion.
func NewStaticMesh(vertices []mgl32.Vec3, triangles [][3]int) *MotionMesh {
	return &MotionMesh{
		Triangles: triangles,
		Steps:     [][]mgl32.Vec3{vertices},
	}
}

// VerticesAtTime returns the three vertices of triangle prim interpolated to
// time in [0, 1]. Times 0 and 1 reproduce the first and last keyframe
// exactly; intermediate times interpolate linearly within the bracketing
// segment.
func (m *MotionMesh) VerticesAtTime(prim int, time float32) [3]mgl32.Vec3 {
	tri := m.Triangles[prim]

	if len(m.Steps) == 1 {
		v := m.Steps[0]
		return [3]mgl32.Vec3{v[tri[0]], v[tri[1]], v[tri[2]]}
	}

	if time < 0 {
		time = 0
	} else if time > 1 {
		time = 1
	}

	maxStep := len(m.Steps) - 1
	scaled := time * float32(maxStep)

	step := int(scaled)
	if step >= maxStep {
		step = maxStep - 1 // time == 1 lands on the last segment
	}

	frac := scaled - float32(step)
	a, b := m.Steps[step], m.Steps[step+1]

	var verts [3]mgl32.Vec3
	for i, vi := range tri {
		verts[i] = lerp(a[vi], b[vi], frac)
	}

	return verts
}

// lerp keeps the endpoints exact: frac 0 returns a, frac 1 returns b.
func lerp(a, b mgl32.Vec3, frac float32) mgl32.Vec3 {
	return a.Mul(1 - frac).Add(b.Mul(frac))
}
