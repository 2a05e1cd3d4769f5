package motiontracer

import (
	"github.com/galaco/bsp"
	"github.com/galaco/bsp/lumps"
	vpk "github.com/galaco/vpk2"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

const maxSurfVerts = 32

// WorldMesh triangulates the world faces of a BSP map into a static mesh,
// one triangle fan per face.
func WorldMesh(bspfile *bsp.Bsp) *MotionMesh {
	surfaces := bspfile.Lump(bsp.LumpFaces).(*lumps.Face).GetData()
	surfEdges := bspfile.Lump(bsp.LumpSurfEdges).(*lumps.Surfedge).GetData()
	vertices := bspfile.Lump(bsp.LumpVertexes).(*lumps.Vertex).GetData()
	edges := bspfile.Lump(bsp.LumpEdges).(*lumps.Edge).GetData()

	var (
		verts []mgl32.Vec3
		tris  [][3]int
	)

	for _, surface := range surfaces {
		firstEdge := int(surface.FirstEdge)
		numEdges := int(surface.NumEdges)

		if numEdges < 3 || numEdges > maxSurfVerts || surface.TexInfo <= 0 {
			continue
		}

		base := len(verts)

		for i := 0; i < numEdges; i++ {
			edgeIndex := surfEdges[firstEdge+i]
			if edgeIndex >= 0 {
				verts = append(verts, vertices[edges[edgeIndex][0]])
			} else {
				verts = append(verts, vertices[edges[-edgeIndex][1]])
			}
		}

		for i := 1; i < numEdges-1; i++ {
			tris = append(tris, [3]int{base, base + i, base + i + 1})
		}
	}

	return NewStaticMesh(verts, tris)
}

// LoadMapScene loads a BSP map and its static-prop collision meshes into a
// scene. World geometry becomes object 0, stored in world space; each
// resolvable prop becomes an instanced object with its placement transform.
// vpkPrefixes are searched for prop models not embedded in the map's pakfile.
//
// A scene with unresolvable props is still returned, alongside a
// MissingModelsError naming them.
func LoadMapScene(path string, vpkPrefixes ...string) (*Scene, error) {
	bspfile, err := bsp.ReadFromFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read bsp %q", path)
	}

	vpks := make([]*vpk.VPK, 0, len(vpkPrefixes))

	for _, prefix := range vpkPrefixes {
		archive, err := vpk.Open(vpk.MultiVPK(prefix))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open vpk %q", prefix)
		}

		vpks = append(vpks, archive)
	}

	scene := NewScene(HitSpaceWorld)
	scene.AddObject(WorldMesh(bspfile), mgl32.Ident4(), true)

	fs := &assetFS{
		pakfile: bspfile.Lump(bsp.LumpPakfile).(*lumps.Pakfile).GetData(),
		vpks:    vpks,
	}

	gameLump := bspfile.Lump(bsp.LumpGame).(*lumps.Game).GetData()
	spLump := gameLump.GetStaticPropLump()

	var missingModels []string

	meshes := make([]*MotionMesh, len(spLump.DictLump.Name))

	for i, name := range spLump.DictLump.Name {
		model, err := loadCollisionModel(fs, name)
		if err != nil {
			missingModels = append(missingModels, name)

			continue
		}

		meshes[i] = CollisionMesh(model.Phy)
	}

	for _, prop := range spLump.PropLumps {
		mesh := meshes[prop.GetPropType()]
		if mesh == nil || len(mesh.Triangles) == 0 {
			continue
		}

		scene.AddObject(mesh, PropTransform(prop), false)
	}

	if len(missingModels) > 0 {
		return scene, MissingModelsError{
			missingModels: missingModels,
		}
	}

	return scene, nil
}
