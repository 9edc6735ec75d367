package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pixil98/go-testutil"
	"github.com/pixil98/go-warp/internal/warp"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func TestYamlWarpStore_Load(t *testing.T) {
	tests := map[string]struct {
		content string
		missing bool
		expErr  bool
		exp     map[string]warp.Warp
	}{
		"missing file": {
			missing: true,
			exp:     map[string]warp.Warp{},
		},
		"missing root key": {
			content: "motd: hello\n",
			exp:     map[string]warp.Warp{},
		},
		"full record": {
			content: `
warps:
  spawn:
    world: world
    x: 1.5
    y: 64
    z: -3.25
    yaw: 90
    pitch: 10
`,
			exp: map[string]warp.Warp{
				"spawn": {World: "world", X: 1.5, Y: 64, Z: -3.25, Yaw: 90, Pitch: 10},
			},
		},
		"missing numbers default to zero": {
			content: `
warps:
  origin:
    world: world
`,
			exp: map[string]warp.Warp{
				"origin": {World: "world"},
			},
		},
		"records without world dropped": {
			content: `
warps:
  blank:
    world: "  "
    x: 1
  none:
    x: 2
  spawn:
    world: world
`,
			exp: map[string]warp.Warp{
				"spawn": {World: "world"},
			},
		},
		"malformed record dropped": {
			content: `
warps:
  broken:
    world: world
    x: not-a-number
  spawn:
    world: world
`,
			exp: map[string]warp.Warp{
				"spawn": {World: "world"},
			},
		},
		"unparseable file": {
			content: "warps: [\n",
			expErr:  true,
			exp:     map[string]warp.Warp{},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "warps.yml")
			if !tt.missing {
				writeFile(t, path, tt.content)
			}

			got, err := NewYamlWarpStore(path).Load()
			testutil.AssertEqual(t, "error", err != nil, tt.expErr)
			testutil.AssertEqual(t, "count", len(got), len(tt.exp))
			for name, exp := range tt.exp {
				testutil.AssertEqual(t, name, got[name], exp)
			}
		})
	}
}

func TestYamlWarpStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "warps.yml")
	store := NewYamlWarpStore(path)

	warps := map[string]warp.Warp{
		"spawn":  {World: "world", X: 0.5, Y: 70, Z: 0.5, Yaw: 180, Pitch: -15},
		"nether": {World: "world_nether", X: -100, Y: 32, Z: 44},
	}
	if err := store.Save(warps); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "count", len(got), 2)
	for name, exp := range warps {
		testutil.AssertEqual(t, name, got[name], exp)
	}
}

func TestYamlWarpStore_SaveReplacesWarps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warps.yml")
	store := NewYamlWarpStore(path)

	if err := store.Save(map[string]warp.Warp{"old": {World: "world"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Save(map[string]warp.Warp{"new": {World: "world"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	testutil.AssertEqual(t, "count", len(got), 1)
	_, ok := got["new"]
	testutil.AssertEqual(t, "has new", ok, true)
}

func TestYamlWarpStore_SavePreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warps.yml")
	writeFile(t, path, "motd: hello\nwarps:\n  old:\n    world: world\n")

	if err := NewYamlWarpStore(path).Save(map[string]warp.Warp{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading file: %v", err)
	}

	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("parsing file: %v", err)
	}

	testutil.AssertEqual(t, "motd", doc["motd"], any("hello"))
	warps, _ := doc["warps"].(map[string]any)
	testutil.AssertEqual(t, "warps", len(warps), 0)
}

func TestYamlWarpStore_SaveOverUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warps.yml")
	writeFile(t, path, "warps: [\n")
	store := NewYamlWarpStore(path)

	if err := store.Save(map[string]warp.Warp{"spawn": {World: "world"}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.AssertEqual(t, "spawn", got["spawn"], warp.Warp{World: "world"})
}
