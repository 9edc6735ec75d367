package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pixil98/go-warp/internal/warp"
	"gopkg.in/yaml.v3"
)

const warpsKey = "warps"

type warpRecord struct {
	World string  `yaml:"world"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Z     float64 `yaml:"z"`
	Yaw   float32 `yaml:"yaw"`
	Pitch float32 `yaml:"pitch"`
}

func newWarpRecord(w warp.Warp) warpRecord {
	return warpRecord{
		World: w.World,
		X:     w.X,
		Y:     w.Y,
		Z:     w.Z,
		Yaw:   w.Yaw,
		Pitch: w.Pitch,
	}
}

func (r warpRecord) warp() warp.Warp {
	return warp.Warp{
		World: r.World,
		X:     r.X,
		Y:     r.Y,
		Z:     r.Z,
		Yaw:   r.Yaw,
		Pitch: r.Pitch,
	}
}

// YamlWarpStore keeps warps in a YAML document under the "warps" key. Other
// top-level keys in the document are preserved on save.
type YamlWarpStore struct {
	path string

	mu sync.Mutex
}

func NewYamlWarpStore(path string) *YamlWarpStore {
	return &YamlWarpStore{path: path}
}

// Load reads every warp in the document. Records without a world, or that
// cannot be decoded, are dropped. A missing file or missing root key yields
// an empty result.
func (s *YamlWarpStore) Load() (map[string]warp.Warp, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	warps := map[string]warp.Warp{}

	doc, err := s.read()
	if err != nil {
		return warps, err
	}

	root, ok := doc[warpsKey]
	if !ok {
		return warps, nil
	}

	var entries map[string]yaml.Node
	if err := root.Decode(&entries); err != nil {
		return warps, fmt.Errorf("decoding %s: %w", warpsKey, err)
	}

	for name, node := range entries {
		var rec warpRecord
		if err := node.Decode(&rec); err != nil {
			slog.Warn("skipping malformed warp", "warp", name, "error", err)
			continue
		}
		if strings.TrimSpace(rec.World) == "" {
			slog.Debug("skipping warp without world", "warp", name)
			continue
		}
		warps[name] = rec.warp()
	}

	return warps, nil
}

// Save replaces every persisted warp with the contents of warps.
func (s *YamlWarpStore) Save(warps map[string]warp.Warp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		slog.Warn("replacing unreadable warp file", "path", s.path, "error", err)
		doc = nil
	}
	if doc == nil {
		doc = map[string]yaml.Node{}
	}

	records := make(map[string]warpRecord, len(warps))
	for name, w := range warps {
		records[name] = newWarpRecord(w)
	}

	var root yaml.Node
	if err := root.Encode(records); err != nil {
		return fmt.Errorf("encoding warps: %w", err)
	}
	doc[warpsKey] = root

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshalling yaml: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	return atomicWrite(s.path, data, 0644)
}

func (s *YamlWarpStore) read() (map[string]yaml.Node, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.path, err)
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.path, err)
	}

	return doc, nil
}
