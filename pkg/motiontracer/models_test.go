package motiontracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingModelsError(t *testing.T) {
	t.Parallel()

	err := MissingModelsError{missingModels: []string{"models/a.mdl", "models/b.mdl"}}
	assert.Equal(t, `missing models: ("models/a.mdl", "models/b.mdl")`, err.Error())
}

func TestCollisionMesh_NoPhy(t *testing.T) {
	t.Parallel()

	assert.Nil(t, CollisionMesh(nil))
}

func TestLoadMapScene_NonExisting(t *testing.T) {
	t.Parallel()

	_, err := LoadMapScene("./does_not_exist.bsp")
	assert.Error(t, err)
}
