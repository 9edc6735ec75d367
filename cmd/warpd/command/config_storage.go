package command

import (
	"fmt"
	"os"

	"github.com/pixil98/go-errors"
	"github.com/pixil98/go-warp/internal/storage"
	"github.com/pixil98/go-warp/internal/world"
)

type StorageConfig struct {
	Warps  WarpFileConfig                 `json:"warps"`
	Worlds AssetConfig[*world.Definition] `json:"worlds"`
}

func (c *StorageConfig) Validate() error {
	el := errors.NewErrorList()
	el.Add(c.Warps.Validate("warps"))
	el.Add(c.Worlds.Validate("worlds"))
	return el.Err()
}

// WarpFileConfig points at the YAML file warps are persisted to. The file is
// created on the first save.
type WarpFileConfig struct {
	Path string `json:"path"`
}

func (c *WarpFileConfig) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	return nil
}

func (c *WarpFileConfig) BuildWarpStore() *storage.YamlWarpStore {
	return storage.NewYamlWarpStore(c.Path)
}

type AssetConfig[T storage.ValidatingSpec] struct {
	Path string `json:"path"`
}

func (c *AssetConfig[T]) Validate(name string) error {
	if c.Path == "" {
		return fmt.Errorf("%s: path is required", name)
	}
	_, err := os.Stat(c.Path)
	if err != nil {
		return fmt.Errorf("%s: invalid path %q: %w", name, c.Path, err)
	}

	return nil
}

func (c *AssetConfig[T]) BuildFileStore() (*storage.FileStore[T], error) {
	return storage.NewFileStore[T](c.Path)
}
