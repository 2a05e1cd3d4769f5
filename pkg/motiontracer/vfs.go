package motiontracer

import (
	"archive/zip"
	"io"
	"strings"

	vpk "github.com/galaco/vpk2"
	"github.com/pkg/errors"
)

// assetFS resolves model files from a map's embedded pakfile first, falling
// back to any mounted VPK archives.
type assetFS struct {
	pakfile *zip.Reader
	vpks    []*vpk.VPK

	pakfileIndex map[string]*zip.File
}

var errFileNotFound = errors.New("file not found")

func (fs *assetFS) open(path string) (io.ReadCloser, error) {
	f, err := fs.pakfile.Open(path)
	if err == nil {
		stat, err := f.Stat()
		if err == nil && stat.Size() > 0 {
			return f, nil
		}
	}

	// try case-insensitive
	if fs.pakfileIndex == nil {
		fs.pakfileIndex = make(map[string]*zip.File)

		for _, f := range fs.pakfile.File {
			fs.pakfileIndex[strings.ToLower(f.Name)] = f
		}
	}

	pakF, ok := fs.pakfileIndex[strings.ToLower(path)]
	if ok {
		f, err := pakF.Open()
		if err == nil {
			return f, nil
		}
	}

	// try vpk
	for _, vpkF := range fs.vpks {
		f, err := vpkF.Open(path)
		if err == nil {
			stat, err := f.Stat()
			if err == nil && stat.Size() > 0 {
				return f, nil
			}
		}
	}

	return nil, errors.Wrapf(errFileNotFound, "%s not found", path)
}
