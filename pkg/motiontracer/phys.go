package motiontracer

import (
	"github.com/galaco/bsp/primitives/game"
	"github.com/galaco/studiomodel/mdl"
	"github.com/galaco/studiomodel/phy"
	"github.com/go-gl/mathgl/mgl32"
)

// .phy solids are stored in meters, maps in inches.
const sourceUnitsPerMeter = 1 / 0.0254

func vectorITransform(in mgl32.Vec3, m mgl32.Mat3x4) (out mgl32.Vec3) {
	var t mgl32.Vec3
	t[0] = in[0] - m.Col(3)[0]
	t[1] = in[1] - m.Col(3)[1]
	t[2] = in[2] - m.Col(3)[2]

	out[0] = t[0]*m.Col(0)[0] + t[1]*m.Col(0)[1] + t[2]*m.Col(0)[2]
	out[1] = t[0]*m.Col(1)[0] + t[1]*m.Col(1)[1] + t[2]*m.Col(1)[2]
	out[2] = t[0]*m.Col(2)[0] + t[1]*m.Col(2)[1] + t[2]*m.Col(2)[2]

	return out
}

// phyVertexToModelSpace rescales a .phy vertex to map units and swizzles it
// into the model's coordinate convention.
func phyVertexToModelSpace(bone *mdl.Bone, vertex mgl32.Vec3) (out mgl32.Vec3) {
	out[0] = sourceUnitsPerMeter * vertex[0]
	out[1] = sourceUnitsPerMeter * vertex[2]
	out[2] = sourceUnitsPerMeter * -vertex[1]

	if bone != nil {
		return vectorITransform(out, bone.PoseToBone)
	}

	out[0] = sourceUnitsPerMeter * vertex[2]
	out[1] = sourceUnitsPerMeter * -vertex[0]
	out[2] = sourceUnitsPerMeter * -vertex[1]

	return out
}

// CollisionMesh converts a .phy collision solid into a rest-pose MotionMesh
// in model space. Placement belongs in the object transform, so the same
// mesh can back every instance of the prop.
func CollisionMesh(phyData *phy.Phy) *MotionMesh {
	if phyData == nil {
		return nil
	}

	verts := make([]mgl32.Vec3, 0, 3*len(phyData.TriangleFaces))
	tris := make([][3]int, len(phyData.TriangleFaces))

	for i, face := range phyData.TriangleFaces {
		base := len(verts)

		verts = append(verts,
			phyVertexToModelSpace(nil, phyData.Vertices[face.V1].Vec3()),
			phyVertexToModelSpace(nil, phyData.Vertices[face.V2].Vec3()),
			phyVertexToModelSpace(nil, phyData.Vertices[face.V3].Vec3()),
		)

		tris[i] = [3]int{base, base + 1, base + 2}
	}

	return NewStaticMesh(verts, tris)
}

// PropTransform builds the object-to-world transform of a placed prop from
// its origin and Euler angles.
func PropTransform(prop game.IStaticPropDataLump) mgl32.Mat4 {
	origin := prop.GetOrigin()
	angles := prop.GetAngles()

	translate := mgl32.Translate3D(origin.X(), origin.Y(), origin.Z())
	rotate := mgl32.Rotate3DZ(angles.Z()).Mat4().
		Mul4(mgl32.Rotate3DY(angles.Y()).Mat4()).
		Mul4(mgl32.Rotate3DX(angles.X()).Mat4())

	return translate.Mul4(rotate)
}
