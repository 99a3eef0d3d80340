package loader_test

import (
	"testing"

	"minio-storage/core/loader"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

type fakeFeature struct {
	name    string
	enabled bool
	loadErr error
	loaded  bool
}

func (f *fakeFeature) Name() string    { return f.name }
func (f *fakeFeature) IsEnabled() bool { return f.enabled }
func (f *fakeFeature) Load(app fiber.Router) error {
	f.loaded = true
	return f.loadErr
}

func TestManager_LoadAll(t *testing.T) {
	t.Run("LoadsEnabled", func(t *testing.T) {
		mgr := loader.NewManager()
		enabled := &fakeFeature{name: "a", enabled: true}
		disabled := &fakeFeature{name: "b", enabled: false}
		mgr.Register(enabled)
		mgr.Register(disabled)

		err := mgr.LoadAll(fiber.New())
		assert.NoError(t, err)
		assert.True(t, enabled.loaded)
		assert.False(t, disabled.loaded)
	})

	t.Run("PropagatesError", func(t *testing.T) {
		mgr := loader.NewManager()
		mgr.Register(&fakeFeature{name: "broken", enabled: true, loadErr: assert.AnError})

		err := mgr.LoadAll(fiber.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "broken")
	})
}
