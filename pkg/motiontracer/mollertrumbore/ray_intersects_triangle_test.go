package mollertrumbore

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

var unitTriangle = [3]mgl32.Vec3{
	{1, 0, 0},
	{0, 1, 0},
	{0, 0, 0},
}

func TestRayIntersectsTriangle(t *testing.T) {
	t.Parallel()

	type args struct {
		origin mgl32.Vec3
		dir    mgl32.Vec3
		tMax   float32
	}
	tests := []struct {
		name string
		args args
		want RayCastResult
	}{
		{
			name: "hit through center",
			args: args{
				origin: mgl32.Vec3{0.25, 0.25, -1},
				dir:    mgl32.Vec3{0, 0, 1},
				tMax:   10,
			},
			want: RayCastResult{Hit: true, U: 0.25, V: 0.25, T: 1},
		},
		{
			name: "miss outside simplex",
			args: args{
				origin: mgl32.Vec3{0.75, 0.75, -1},
				dir:    mgl32.Vec3{0, 0, 1},
				tMax:   10,
			},
			want: RayCastResult{},
		},
		{
			name: "parallel ray",
			args: args{
				origin: mgl32.Vec3{0.25, 0.25, -1},
				dir:    mgl32.Vec3{1, 0, 0},
				tMax:   10,
			},
			want: RayCastResult{},
		},
		{
			name: "triangle behind origin",
			args: args{
				origin: mgl32.Vec3{0.25, 0.25, 1},
				dir:    mgl32.Vec3{0, 0, 1},
				tMax:   10,
			},
			want: RayCastResult{},
		},
		{
			name: "hit beyond tMax",
			args: args{
				origin: mgl32.Vec3{0.25, 0.25, -1},
				dir:    mgl32.Vec3{0, 0, 1},
				tMax:   0.5,
			},
			want: RayCastResult{},
		},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := RayIntersectsTriangle(tt.args.origin, tt.args.dir, tt.args.tMax, unitTriangle)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Accepted hits must have valid barycentric coordinates and reconstruct to a
// point on the ray.
func TestRayIntersectsTriangle_Barycentric(t *testing.T) {
	t.Parallel()

	tri := [3]mgl32.Vec3{
		{3, -1, 2},
		{-1, 3, 2.5},
		{-1, -1, 1.5},
	}

	origins := []mgl32.Vec3{
		{0, 0, -4},
		{0.5, 0.25, -2},
		{-0.5, 0.5, -7},
	}

	for _, origin := range origins {
		dir := mgl32.Vec3{0, 0, 1}

		r := RayIntersectsTriangle(origin, dir, 100, tri)
		assert.True(t, r.Hit)
		assert.GreaterOrEqual(t, r.U, float32(0))
		assert.GreaterOrEqual(t, r.V, float32(0))
		assert.LessOrEqual(t, r.U+r.V, float32(1))

		onTri := tri[2].Mul(1 - r.U - r.V).Add(tri[0].Mul(r.U)).Add(tri[1].Mul(r.V))
		onRay := origin.Add(dir.Mul(r.T))

		assert.InDelta(t, onRay.X(), onTri.X(), 1e-4)
		assert.InDelta(t, onRay.Y(), onTri.Y(), 1e-4)
		assert.InDelta(t, onRay.Z(), onTri.Z(), 1e-4)
	}
}
