package motiontracer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// rayIntersectsBounds is a conservative slab test against an axis-aligned
// box, used to skip whole objects before per-triangle work.
func rayIntersectsBounds(origin, direction, min, max mgl32.Vec3) bool {
	// Any component of direction could be 0!
	// Address this by using a small number, close to
	// 0 in case any of directions components are 0
	dir := direction
	if dir[0] == 0 {
		dir[0] = 0.00001
	}
	if dir[1] == 0 {
		dir[1] = 0.00001
	}
	if dir[2] == 0 {
		dir[2] = 0.00001
	}

	t1 := float64((min[0] - origin[0]) / dir[0])
	t2 := float64((max[0] - origin[0]) / dir[0])
	t3 := float64((min[1] - origin[1]) / dir[1])
	t4 := float64((max[1] - origin[1]) / dir[1])
	t5 := float64((min[2] - origin[2]) / dir[2])
	t6 := float64((max[2] - origin[2]) / dir[2])

	tmin := math.Max(math.Max(math.Min(t1, t2), math.Min(t3, t4)), math.Min(t5, t6))
	tmax := math.Min(math.Min(math.Max(t1, t2), math.Max(t3, t4)), math.Max(t5, t6))

	// box entirely behind the ray origin
	if tmax < 0 {
		return false
	}

	return tmin <= tmax
}

// extents finds the minimum and maximum of the mesh's vertices across every
// motion step, so the box bounds the triangle at any time sample.
func (m *MotionMesh) extents() (min, max mgl32.Vec3) {
	min = mgl32.Vec3{mgl32.MaxValue, mgl32.MaxValue, mgl32.MaxValue}
	max = mgl32.Vec3{mgl32.MinValue, mgl32.MinValue, mgl32.MinValue}

	for _, step := range m.Steps {
		for _, vertex := range step {
			for i, f := range vertex {
				if f < min[i] {
					min[i] = f
				}
				if f > max[i] {
					max[i] = f
				}
			}
		}
	}

	return min, max
}
