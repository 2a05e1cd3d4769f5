package motiontracer

import (
	"fmt"
	"io"
	"strings"

	"github.com/galaco/studiomodel"
	"github.com/galaco/studiomodel/mdl"
	"github.com/galaco/studiomodel/phy"
	"github.com/pkg/errors"
)

type modelFileSystem interface {
	open(string) (io.ReadCloser, error)
}

func readModelPart[T any](fs modelFileSystem, filePath string, reader func(io.Reader) (T, error)) (T, error) {
	var def T

	f, err := fs.open(filePath)
	if err != nil {
		return def, errors.Wrapf(err, "failed to open model part file %q", filePath)
	}

	defer f.Close()

	part, err := reader(f)
	if err != nil {
		return def, errors.Wrapf(err, "failed to read model part from %q", filePath)
	}

	return part, nil
}

// loadCollisionModel loads the parts of a studiomodel that ray queries need:
// the .mdl header and the .phy collision solid. Render meshes (.vvd/.vtx)
// are never read.
func loadCollisionModel(fs modelFileSystem, filePath string) (*studiomodel.StudioModel, error) {
	name := strings.Split(filePath, ".mdl")[0]

	mdlData, err := readModelPart(fs, name+".mdl", mdl.ReadFromStream)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read mdl")
	}

	phyData, err := readModelPart(fs, name+".phy", phy.ReadFromStream)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read phy")
	}

	return &studiomodel.StudioModel{
		Filename: name,
		Mdl:      mdlData,
		Phy:      phyData,
	}, nil
}

// MissingModelsError reports props whose collision models could not be
// resolved; the rest of the scene is still usable.
type MissingModelsError struct {
	missingModels []string
}

func (m MissingModelsError) Error() string {
	return fmt.Sprintf(`missing models: ("%s")`, strings.Join(m.missingModels, `", "`))
}
