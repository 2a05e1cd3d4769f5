package motiontracer

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestRayIntersectsBounds(t *testing.T) {
	t.Parallel()

	min := mgl32.Vec3{-1, -1, 4}
	max := mgl32.Vec3{1, 1, 6}

	type args struct {
		origin mgl32.Vec3
		dir    mgl32.Vec3
	}
	tests := []struct {
		name string
		args args
		want bool
	}{
		{name: "hit along z", args: args{origin: mgl32.Vec3{0, 0, 0}, dir: mgl32.Vec3{0, 0, 1}}, want: true},
		{name: "box behind origin", args: args{origin: mgl32.Vec3{0, 0, 10}, dir: mgl32.Vec3{0, 0, 1}}, want: false},
		{name: "parallel outside slab", args: args{origin: mgl32.Vec3{5, 0, 0}, dir: mgl32.Vec3{0, 0, 1}}, want: false},
		{name: "origin inside box", args: args{origin: mgl32.Vec3{0, 0, 5}, dir: mgl32.Vec3{1, 0, 0}}, want: true},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, rayIntersectsBounds(tt.args.origin, tt.args.dir, min, max))
		})
	}
}

func TestMotionMesh_Extents(t *testing.T) {
	t.Parallel()

	mesh := &MotionMesh{
		Triangles: [][3]int{{0, 1, 2}},
		Steps: [][]mgl32.Vec3{
			{{1, 0, 0}, {0, 1, 0}, {0, 0, 0}},
			{{1, 0, 4}, {0, 1, 4}, {-2, 0, 4}},
		},
	}

	// the box must cover the triangle at every time sample
	min, max := mesh.extents()
	assert.Equal(t, mgl32.Vec3{-2, 0, 0}, min)
	assert.Equal(t, mgl32.Vec3{1, 1, 4}, max)
}
